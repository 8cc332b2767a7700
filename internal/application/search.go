package application

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/oksasatya/campus-exchange/internal/domain/entity"
	"github.com/oksasatya/campus-exchange/pkg/helpers"
)

const (
	searchKeywordMinLength = 3
	searchSlugMaxLength    = 50
	searchDefaultSize      = 10
	searchMaxSize          = 50
)

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// userDocument is the search representation of u. Emails are stored masked.
func userDocument(u *entity.User) map[string]any {
	keywords := helpers.ExtractKeywords(
		strings.Join([]string{deref(u.FullName), deref(u.University), deref(u.Bio)}, " "),
		searchKeywordMinLength,
	)
	return map[string]any{
		"id":                  u.ID,
		"email":               helpers.MaskEmail(u.Email),
		"name":                deref(u.FullName),
		"slug":                helpers.GenerateSlug(u.DisplayName(), searchSlugMaxLength),
		"university":          deref(u.University),
		"university_email":    helpers.IsUniversityEmail(u.Email),
		"keywords":            keywords,
		"profile_image_url":   deref(u.ProfileImageURL),
		"is_verified":         u.IsVerified,
		"verification_status": string(u.VerificationStatus),
		"created_at":          u.CreatedAt.Format(time.RFC3339Nano),
		"updated_at":          u.UpdatedAt.Format(time.RFC3339Nano),
	}
}

func (s *Service) indexUser(ctx context.Context, u *entity.User) error {
	if s.ES == nil || s.ESUsersIndex == "" {
		return nil
	}
	b, err := json.Marshal(userDocument(u))
	if err != nil {
		return errors.Wrap(err, "marshal user document")
	}
	req := esapi.IndexRequest{Index: s.ESUsersIndex, DocumentID: u.ID, Body: bytes.NewReader(b), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("es index failed")
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		s.Logger.WithField("status", res.Status()).WithField("user_id", u.ID).Warn("es index response error")
	}
	return nil
}

// SearchUsers runs a multi_match query over name, university and keywords.
// It returns an empty slice when search is not configured.
func (s *Service) SearchUsers(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESUsersIndex == "" || strings.TrimSpace(q) == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > searchMaxSize {
		size = searchDefaultSize
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"name^3", "university^2", "keywords", "slug"},
			},
		},
		"size": size,
	}
	b, err := json.Marshal(query)
	if err != nil {
		return nil, errors.Wrap(err, "marshal search query")
	}

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESUsersIndex),
		s.ES.Search.WithBody(bytes.NewReader(b)),
	)
	if err != nil {
		return nil, errors.Wrap(err, "search users")
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return nil, errors.Newf("search users: %s", res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, errors.Wrap(err, "decode search response")
	}
	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
