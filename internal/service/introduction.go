package service

import (
	"context"
	"errors"
	"fmt"
	"html"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"certviewer/internal/model"
	"certviewer/internal/repository"
)

// IntroductionService is the introduction store: it accepts recipients' requests for certificates.
type IntroductionService interface {
	// Insert sanitises, validates and stores an introduction. Invalid input yields an *Error
	// wrapping ErrInvalidIntroduction.
	Insert(ctx context.Context, in *model.Introduction) error
}

type introductionService struct {
	repo      repository.IntroductionRepository
	validate  *validator.Validate
	sanitizer *bluemonday.Policy
	now       func() time.Time
}

// NewIntroductionService constructs an IntroductionService.
func NewIntroductionService(repo repository.IntroductionRepository) IntroductionService {
	v := validator.New()
	// Report fields by their wire names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return &introductionService{
		repo:      repo,
		validate:  v,
		sanitizer: bluemonday.StrictPolicy(),
		now:       time.Now,
	}
}

func (s *introductionService) Insert(ctx context.Context, in *model.Introduction) error {
	const op = "insert introduction"
	if in == nil {
		return &Error{Op: op, Err: ErrInvalidIntroduction}
	}

	clean := *in
	for _, f := range []*string{
		&clean.RecipientKey, &clean.Email, &clean.FirstName, &clean.LastName,
		&clean.StreetAddress, &clean.City, &clean.State, &clean.ZipCode, &clean.Country, &clean.Comments,
	} {
		*f = s.plainText(*f)
	}

	if err := s.validate.Struct(&clean); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return &Error{Op: op, Err: fmt.Errorf("%w: %s failed on %s", ErrInvalidIntroduction, fe.Field(), fe.Tag())}
		}
		return &Error{Op: op, Err: fmt.Errorf("%w: %v", ErrInvalidIntroduction, err)}
	}

	clean.ID = uuid.NewString()
	clean.CreatedAt = s.now().UTC()

	if _, err := s.repo.Create(ctx, &clean); err != nil {
		return fmt.Errorf("store introduction: %w", err)
	}
	return nil
}

// plainText strips markup and surrounding whitespace, leaving unescaped text.
func (s *introductionService) plainText(v string) string {
	return strings.TrimSpace(html.UnescapeString(s.sanitizer.Sanitize(v)))
}
