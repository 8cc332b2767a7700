package testkit

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"github.com/onsi/gomega"

	"github.com/oksasatya/campus-exchange/internal/domain/entity"
	"github.com/oksasatya/campus-exchange/pkg/helpers"
)

type RequestModifier func(r *http.Request)

type RequestModifiers []RequestModifier

func WithBearer(token string) RequestModifier {
	return func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
	}
}

// WithUserCred signs an access token for u.
func WithUserCred(jwt *helpers.JWTManager, u *entity.User) RequestModifier {
	return WithBearer(TokenFor(jwt, u))
}

// TokenFor signs an access token for u with a fixed session id.
func TokenFor(jwt *helpers.JWTManager, u *entity.User) string {
	token, _, err := jwt.GenerateAccessToken(u.ID, "test-session")
	gomega.ExpectWithOffset(1, err).NotTo(gomega.HaveOccurred())
	return token
}

// File is a multipart upload under the "file" field.
type File struct {
	Name        string
	ContentType string
	Content     []byte
	Fields      map[string]string
}

type RequestFactory struct {
	Method  string
	Target  string
	JSONObj any
	RawBody string
	File    *File
	Mods    RequestModifiers
}

func (r RequestFactory) body() (io.Reader, string) {
	switch {
	case r.File != nil:
		buf := &bytes.Buffer{}
		w := multipart.NewWriter(buf)
		h := make(map[string][]string)
		h["Content-Disposition"] = []string{`form-data; name="file"; filename="` + r.File.Name + `"`}
		h["Content-Type"] = []string{r.File.ContentType}
		part, err := w.CreatePart(h)
		gomega.ExpectWithOffset(2, err).NotTo(gomega.HaveOccurred())
		_, err = part.Write(r.File.Content)
		gomega.ExpectWithOffset(2, err).NotTo(gomega.HaveOccurred())
		for k, v := range r.File.Fields {
			gomega.ExpectWithOffset(2, w.WriteField(k, v)).To(gomega.Succeed())
		}
		gomega.ExpectWithOffset(2, w.Close()).To(gomega.Succeed())
		return buf, w.FormDataContentType()
	case r.JSONObj != nil:
		buf := &bytes.Buffer{}
		err := json.NewEncoder(buf).Encode(r.JSONObj)
		gomega.ExpectWithOffset(2, err).NotTo(gomega.HaveOccurred())
		return buf, gin.MIMEJSON
	case r.RawBody != "":
		return bytes.NewBufferString(r.RawBody), gin.MIMEJSON
	}
	return nil, ""
}

func (r RequestFactory) MakeFake() *http.Request {
	body, contentType := r.body()
	request := httptest.NewRequest(r.Method, r.Target, body)
	if contentType != "" {
		request.Header.Set("Content-Type", contentType)
	}
	for _, mod := range r.Mods {
		mod(request)
	}
	return request
}

// Serve runs the request through h and returns the recorder.
func (r RequestFactory) Serve(h http.Handler) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r.MakeFake())
	return rec
}

func DecodeJSON[T any](body io.Reader) T {
	t := new(T)
	err := json.NewDecoder(body).Decode(t)
	gomega.ExpectWithOffset(1, err).NotTo(gomega.HaveOccurred())
	return *t
}

// Envelope mirrors the API response envelope with a typed data block.
type Envelope[T any] struct {
	Status    int            `json:"status"`
	RequestID string         `json:"request_id"`
	Success   bool           `json:"success"`
	Message   string         `json:"message"`
	Data      T              `json:"data"`
	Meta      map[string]any `json:"meta"`
	Error     any            `json:"error"`
}
