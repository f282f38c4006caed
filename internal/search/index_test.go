package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/babyBee3443/biogenius-sub001/internal/domain"
	"github.com/babyBee3443/biogenius-sub001/internal/search"
)

func newMemIndex(t *testing.T) *search.Index {
	t.Helper()
	idx, err := search.Open("")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = idx.Close()
	})
	return idx
}

func TestIndex_ArticleRoundTrip(t *testing.T) {
	idx := newMemIndex(t)

	article := &domain.Article{
		ID:       "a-1",
		Title:    "CRISPR ile Gen Düzenleme",
		Excerpt:  "Gen makasları nasıl çalışır",
		Category: "Genetik",
		Keywords: []string{"crispr", "genetik"},
		Blocks: []domain.Block{
			{Type: domain.BlockText, Content: "CRISPR Cas9 bakterilerin bağışıklık sisteminden türetilmiştir."},
		},
	}
	require.NoError(t, idx.IndexArticle(article))

	count, err := idx.Count()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count)

	t.Run("found by a title word", func(t *testing.T) {
		results, err := idx.Search("CRISPR", 10)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "a-1", results[0].ID)
		assert.Equal(t, search.KindArticle, results[0].Kind)
		assert.Equal(t, "CRISPR ile Gen Düzenleme", results[0].Title)
	})

	t.Run("found by body text", func(t *testing.T) {
		results, err := idx.Search("Cas9", 10)
		require.NoError(t, err)
		assert.Len(t, results, 1)
	})

	t.Run("no hit for unrelated query", func(t *testing.T) {
		results, err := idx.Search("fotosentez", 10)
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}

func TestIndex_DeleteRemovesDocument(t *testing.T) {
	idx := newMemIndex(t)

	note := &domain.Note{
		ID:       "n-1",
		Title:    "Fotosentez Özeti",
		Summary:  "Işık reaksiyonları",
		Category: "Bitki Biyolojisi",
	}
	require.NoError(t, idx.IndexNote(note))
	require.NoError(t, idx.Delete(search.KindNote, "n-1"))

	results, err := idx.Search("Fotosentez", 10)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestIndex_KindsDoNotCollide(t *testing.T) {
	idx := newMemIndex(t)

	require.NoError(t, idx.IndexArticle(&domain.Article{ID: "same-id", Title: "Ortak Başlık"}))
	require.NoError(t, idx.IndexNote(&domain.Note{ID: "same-id", Title: "Ortak Başlık"}))

	count, err := idx.Count()
	require.NoError(t, err)
	assert.Equal(t, uint64(2), count)

	// Deleting the note leaves the article intact
	require.NoError(t, idx.Delete(search.KindNote, "same-id"))
	results, err := idx.Search("Ortak", 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, search.KindArticle, results[0].Kind)
}

func TestFlattenBlocks(t *testing.T) {
	got := search.FlattenBlocks([]domain.Block{
		{Type: domain.BlockHeading, Content: "Başlık"},
		{Type: domain.BlockText, Content: "Gövde metni"},
		{Type: domain.BlockImage, URL: "x.png", Caption: "Resim açıklaması"},
		{Type: domain.BlockDivider},
		{Type: domain.BlockQuote, Content: "Alıntı"},
	})
	assert.Equal(t, "Başlık\nGövde metni\nResim açıklaması\nAlıntı", got)

	assert.Equal(t, "", search.FlattenBlocks(nil))
}
