package helpers

import (
	"context"
	"crypto/tls"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
)

// NewESClient returns nil, nil when addrs is empty so callers can treat search as optional.
func NewESClient(addrs []string, username, password string) (*elasticsearch.Client, error) {
	if len(addrs) == 0 {
		return nil, nil
	}
	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses:     addrs,
		Username:      username,
		Password:      password,
		RetryOnStatus: []int{502, 503, 504},
		MaxRetries:    2,
		Transport: &http.Transport{
			MaxIdleConnsPerHost:   10,
			ResponseHeaderTimeout: 5 * time.Second,
			TLSClientConfig:       &tls.Config{MinVersion: tls.VersionTLS12},
			DialContext:           (&net.Dialer{Timeout: 5 * time.Second}).DialContext,
		},
	})
	return es, errors.Wrap(err, "elasticsearch client")
}

// usersIndexMapping keeps masked emails out of full-text search and lets
// name/university match partial words typed into a search box.
const usersIndexMapping = `{
  "settings": {
    "analysis": {
      "analyzer": {
        "prefix": {"type": "custom", "tokenizer": "standard", "filter": ["lowercase", "asciifolding", "prefix_ngram"]}
      },
      "filter": {
        "prefix_ngram": {"type": "edge_ngram", "min_gram": 2, "max_gram": 15}
      }
    }
  },
  "mappings": {
    "properties": {
      "id":                  {"type": "keyword"},
      "email":               {"type": "keyword", "index": false},
      "name":                {"type": "text", "analyzer": "prefix", "search_analyzer": "standard"},
      "slug":                {"type": "keyword"},
      "university":          {"type": "text", "analyzer": "prefix", "search_analyzer": "standard"},
      "university_email":    {"type": "boolean"},
      "keywords":            {"type": "keyword"},
      "profile_image_url":   {"type": "keyword", "index": false},
      "is_verified":         {"type": "boolean"},
      "verification_status": {"type": "keyword"},
      "created_at":          {"type": "date"},
      "updated_at":          {"type": "date"}
    }
  }
}`

// EnsureUsersIndex creates index with the user profile mapping unless it exists.
func EnsureUsersIndex(ctx context.Context, es *elasticsearch.Client, index string) error {
	if es == nil || index == "" {
		return nil
	}
	exists, err := esapi.IndicesExistsRequest{Index: []string{index}}.Do(ctx, es)
	if err != nil {
		return errors.Wrapf(err, "check index %s", index)
	}
	_ = exists.Body.Close()
	if exists.StatusCode == http.StatusOK {
		return nil
	}

	res, err := esapi.IndicesCreateRequest{Index: index, Body: strings.NewReader(usersIndexMapping)}.Do(ctx, es)
	if err != nil {
		return errors.Wrapf(err, "create index %s", index)
	}
	defer func() { _ = res.Body.Close() }()
	// a concurrent instance may have won the race
	if res.IsError() && !strings.Contains(res.String(), "resource_already_exists_exception") {
		return errors.Newf("create index %s: %s", index, res.Status())
	}
	return nil
}
