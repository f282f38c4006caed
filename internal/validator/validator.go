package validator

import (
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/babyBee3443/biogenius-sub001/internal/domain"
)

var (
	slugRegex     = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_.-]{3,32}$`)
)

// The In rules compare with interface equality, so the allowed values must
// keep the field's own type; converting to string would never match.
func statusValues() []interface{} {
	out := make([]interface{}, 0, len(domain.Statuses))
	for _, s := range domain.Statuses {
		out = append(out, s)
	}
	return out
}

func levelValues() []interface{} {
	out := make([]interface{}, 0, len(domain.Levels))
	for _, l := range domain.Levels {
		out = append(out, l)
	}
	return out
}

func userStatusValues() []interface{} {
	out := make([]interface{}, 0, len(domain.UserStatuses))
	for _, s := range domain.UserStatuses {
		out = append(out, string(s))
	}
	return out
}

// Validator provides validation methods for domain entities.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateArticle validates an Article entity.
func (v *Validator) ValidateArticle(a *domain.Article) error {
	err := validation.ValidateStruct(a,
		validation.Field(&a.Title,
			validation.Required.Error("title_required"),
		),
		validation.Field(&a.Slug,
			validation.Required.Error("slug_required"),
			validation.Match(slugRegex).Error("invalid_slug_format"),
		),
		validation.Field(&a.Category,
			validation.Required.Error("category_required"),
		),
		validation.Field(&a.Status,
			validation.Required.Error("status_required"),
			validation.In(statusValues()...).Error("invalid_status"),
		),
	)
	if err != nil {
		return err
	}
	return validateBlocks(a.Blocks)
}

// ValidateNote validates a Note entity.
func (v *Validator) ValidateNote(n *domain.Note) error {
	err := validation.ValidateStruct(n,
		validation.Field(&n.Title,
			validation.Required.Error("title_required"),
		),
		validation.Field(&n.Slug,
			validation.Required.Error("slug_required"),
			validation.Match(slugRegex).Error("invalid_slug_format"),
		),
		validation.Field(&n.Category,
			validation.Required.Error("category_required"),
		),
		validation.Field(&n.Level,
			validation.Required.Error("level_required"),
			validation.In(levelValues()...).Error("invalid_level"),
		),
		validation.Field(&n.Status,
			validation.Required.Error("status_required"),
			validation.In(statusValues()...).Error("invalid_status"),
		),
	)
	if err != nil {
		return err
	}
	return validateBlocks(n.Blocks)
}

// ValidatePage validates a Page entity.
func (v *Validator) ValidatePage(p *domain.Page) error {
	err := validation.ValidateStruct(p,
		validation.Field(&p.Title,
			validation.Required.Error("title_required"),
		),
		validation.Field(&p.Status,
			validation.Required.Error("status_required"),
			validation.In(statusValues()...).Error("invalid_status"),
		),
	)
	if err != nil {
		return err
	}

	// Custom rule: enabled hero carousels need a positive rotation interval
	if p.Hero != nil && p.Hero.Enabled && p.Hero.RotationInterval <= 0 {
		return validation.Errors{
			"hero": validation.NewError("hero_rotation_interval_invalid", "hero_rotation_interval_invalid"),
		}
	}

	return validateBlocks(p.Blocks)
}

// ValidateCategory validates a Category entity.
func (v *Validator) ValidateCategory(c *domain.Category) error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Name,
			validation.Required.Error("name_required"),
			validation.By(nonBlankRule),
		),
	)
}

// ValidateRole validates a Role entity.
func (v *Validator) ValidateRole(r *domain.Role) error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required.Error("name_required"),
		),
	)
}

// ValidateUser validates a User entity on creation. Password is checked here
// and handed to the external identity boundary; it is never persisted.
func (v *Validator) ValidateUser(u *domain.User) error {
	err := validation.ValidateStruct(u,
		validation.Field(&u.Name,
			validation.Required.Error("name_required"),
		),
		validation.Field(&u.Username,
			validation.Required.Error("username_required"),
			validation.Match(usernameRegex).Error("invalid_username_format"),
		),
		validation.Field(&u.Email,
			validation.Required.Error("email_required"),
			is.Email.Error("invalid_email_format"),
		),
		validation.Field(&u.Role,
			validation.Required.Error("role_required"),
		),
	)
	if err != nil {
		return err
	}

	// Password is excluded from serialization, so ozzo cannot derive its
	// field name from the json tag; validate it separately.
	if u.Password == "" {
		return validation.Errors{"password": validation.NewError("password_required", "password_required")}
	}
	if len([]rune(u.Password)) < 8 {
		return validation.Errors{"password": validation.NewError("password_too_short", "password_too_short")}
	}

	if u.Status != "" {
		if err := validation.Validate(string(u.Status), validation.In(userStatusValues()...).Error("invalid_user_status")); err != nil {
			return validation.Errors{"status": validation.NewError("invalid_user_status", "invalid_user_status")}
		}
	}
	return nil
}

// validateBlocks checks structural constraints on a block sequence.
func validateBlocks(blocks []domain.Block) error {
	for _, b := range blocks {
		switch b.Type {
		case domain.BlockHeading:
			if b.Level < 1 || b.Level > 6 {
				return validation.Errors{
					"blocks": validation.NewError("invalid_heading_level", "invalid_heading_level"),
				}
			}
		case domain.BlockImage:
			if strings.TrimSpace(b.URL) == "" {
				return validation.Errors{
					"blocks": validation.NewError("image_url_required", "image_url_required"),
				}
			}
		case "":
			return validation.Errors{
				"blocks": validation.NewError("block_type_required", "block_type_required"),
			}
		}
	}
	return nil
}

// nonBlankRule rejects values that are only whitespace.
func nonBlankRule(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return nil
	}
	if strings.TrimSpace(s) == "" {
		return validation.NewError("blank_value", "blank_value")
	}
	return nil
}

// FieldErrors flattens ozzo validation errors into a field → reason map for
// API responses.
func FieldErrors(err error) map[string]string {
	out := map[string]string{}
	if ve, ok := err.(validation.Errors); ok {
		for field, fieldErr := range ve {
			out[field] = fieldErr.Error()
		}
	} else if err != nil {
		out["error"] = err.Error()
	}
	return out
}
