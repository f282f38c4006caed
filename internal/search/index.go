// Package search maintains a full-text index over published articles and
// study notes.
package search

import (
	"fmt"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"

	"github.com/babyBee3443/biogenius-sub001/internal/domain"
)

// Document kinds in the index.
const (
	KindArticle = "article"
	KindNote    = "note"
)

// Index wraps a Bleve search index.
type Index struct {
	index bleve.Index
}

// IndexedDocument is the flattened form of an article or note stored in the
// index.
type IndexedDocument struct {
	ID       string
	Kind     string
	Title    string
	Summary  string
	Body     string
	Category string
	Tags     []string
}

// Result is one search hit.
type Result struct {
	ID        string              `json:"id"`
	Kind      string              `json:"kind"`
	Title     string              `json:"title"`
	Score     float64             `json:"score"`
	Fragments map[string][]string `json:"fragments,omitempty"`
}

// Open opens or creates a Bleve index at path. An empty path keeps the index
// in memory, which is enough for single-node deployments and tests.
func Open(path string) (*Index, error) {
	m := buildIndexMapping()

	if path == "" {
		idx, err := bleve.NewMemOnly(m)
		if err != nil {
			return nil, fmt.Errorf("create memory index: %w", err)
		}
		return &Index{index: idx}, nil
	}

	idx, err := bleve.Open(path)
	if err == bleve.ErrorIndexPathDoesNotExist {
		idx, err = bleve.New(path, m)
		if err != nil {
			return nil, fmt.Errorf("create index: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("open index: %w", err)
	}

	return &Index{index: idx}, nil
}

func buildIndexMapping() mapping.IndexMapping {
	textFieldMapping := bleve.NewTextFieldMapping()

	docMapping := bleve.NewDocumentMapping()
	docMapping.AddFieldMappingsAt("ID", bleve.NewKeywordFieldMapping())
	docMapping.AddFieldMappingsAt("Kind", bleve.NewKeywordFieldMapping())
	docMapping.AddFieldMappingsAt("Title", textFieldMapping)
	docMapping.AddFieldMappingsAt("Summary", textFieldMapping)
	docMapping.AddFieldMappingsAt("Body", textFieldMapping)
	docMapping.AddFieldMappingsAt("Category", bleve.NewKeywordFieldMapping())
	docMapping.AddFieldMappingsAt("Tags", bleve.NewTextFieldMapping())

	indexMapping := bleve.NewIndexMapping()
	indexMapping.AddDocumentMapping("_default", docMapping)
	return indexMapping
}

// Close closes the index.
func (i *Index) Close() error {
	return i.index.Close()
}

// IndexArticle adds or updates an article in the index.
func (i *Index) IndexArticle(a *domain.Article) error {
	doc := &IndexedDocument{
		ID:       a.ID,
		Kind:     KindArticle,
		Title:    a.Title,
		Summary:  a.Excerpt,
		Body:     FlattenBlocks(a.Blocks),
		Category: a.Category,
		Tags:     a.Keywords,
	}
	return i.index.Index(docKey(KindArticle, a.ID), doc)
}

// IndexNote adds or updates a note in the index.
func (i *Index) IndexNote(n *domain.Note) error {
	doc := &IndexedDocument{
		ID:       n.ID,
		Kind:     KindNote,
		Title:    n.Title,
		Summary:  n.Summary,
		Body:     FlattenBlocks(n.Blocks),
		Category: n.Category,
		Tags:     n.Tags,
	}
	return i.index.Index(docKey(KindNote, n.ID), doc)
}

// Delete removes a document from the index.
func (i *Index) Delete(kind, id string) error {
	return i.index.Delete(docKey(kind, id))
}

func docKey(kind, id string) string {
	return kind + ":" + id
}

// Search runs a query-string query and returns up to limit hits.
func (i *Index) Search(queryStr string, limit int) ([]*Result, error) {
	query := bleve.NewQueryStringQuery(queryStr)

	req := bleve.NewSearchRequestOptions(query, limit, 0, false)
	req.Highlight = bleve.NewHighlightWithStyle("html")
	req.Fields = []string{"ID", "Kind", "Title"}

	results, err := i.index.Search(req)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	var out []*Result
	for _, hit := range results.Hits {
		r := &Result{
			Score:     hit.Score,
			Fragments: hit.Fragments,
		}
		if id, ok := hit.Fields["ID"].(string); ok {
			r.ID = id
		}
		if kind, ok := hit.Fields["Kind"].(string); ok {
			r.Kind = kind
		}
		if title, ok := hit.Fields["Title"].(string); ok {
			r.Title = title
		}
		out = append(out, r)
	}

	return out, nil
}

// Count returns the number of documents in the index.
func (i *Index) Count() (uint64, error) {
	return i.index.DocCount()
}

// FlattenBlocks joins the searchable text carried by a block sequence.
func FlattenBlocks(blocks []domain.Block) string {
	var parts []string
	for _, b := range blocks {
		switch b.Type {
		case domain.BlockText, domain.BlockHeading, domain.BlockQuote, domain.BlockCode:
			if b.Content != "" {
				parts = append(parts, b.Content)
			}
		case domain.BlockImage, domain.BlockVideo:
			if b.Caption != "" {
				parts = append(parts, b.Caption)
			}
		}
	}
	return strings.Join(parts, "\n")
}
