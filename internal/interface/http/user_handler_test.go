package handlers_test

import (
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/oksasatya/campus-exchange/internal/domain/entity"
	"github.com/oksasatya/campus-exchange/internal/domain/repository"
	"github.com/oksasatya/campus-exchange/internal/schema"
	"github.com/oksasatya/campus-exchange/internal/testkit"
	"github.com/oksasatya/campus-exchange/pkg/mailer"
	"github.com/oksasatya/campus-exchange/pkg/mailer/templates"
)

var _ = Describe("UserHandler", func() {
	var (
		app     *testkit.App
		primary *entity.User
		fresh   *entity.User
	)

	BeforeEach(func() {
		primary, fresh = testkit.PrimaryUser(), testkit.UnverifiedUser()
		app = testkit.NewApp(primary, fresh, testkit.InactiveUser())
	})

	as := func(u *entity.User, rf testkit.RequestFactory) *httptest.ResponseRecorder {
		rf.Mods = append(rf.Mods, testkit.WithUserCred(app.JWT, u))
		return rf.Serve(app.Engine)
	}

	Describe("GET /api/v1/users/profile", func() {
		It("returns the caller's profile", func() {
			rec := as(primary, testkit.RequestFactory{Method: http.MethodGet, Target: "/api/v1/users/profile"})
			Expect(rec.Code).To(Equal(http.StatusOK))

			body := testkit.DecodeJSON[schema.UserResponse](rec.Body)
			Expect(body.ID).To(Equal(primary.ID))
			Expect(body.Email).To(Equal(primary.Email))
			Expect(body.VerificationStatus).To(Equal("verified"))
			Expect(body.EmailVerified).To(BeTrue())
		})

		It("requires authentication", func() {
			rec := testkit.RequestFactory{Method: http.MethodGet, Target: "/api/v1/users/profile"}.Serve(app.Engine)
			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
			Expect(testkit.DecodeJSON[testkit.Envelope[any]](rec.Body).Message).To(Equal("Not authenticated"))
		})

		It("rejects tokens of deactivated accounts", func() {
			rec := as(testkit.InactiveUser(), testkit.RequestFactory{Method: http.MethodGet, Target: "/api/v1/users/profile"})
			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
			Expect(testkit.DecodeJSON[testkit.Envelope[any]](rec.Body).Message).To(Equal("Inactive user"))
		})
	})

	Describe("PUT /api/v1/users/profile", func() {
		It("updates the provided fields only", func() {
			rec := as(primary, testkit.RequestFactory{
				Method:  http.MethodPut,
				Target:  "/api/v1/users/profile",
				JSONObj: map[string]any{"bio": "Also selling a bike", "university": nil},
			})
			Expect(rec.Code).To(Equal(http.StatusOK))

			body := testkit.DecodeJSON[schema.UserResponse](rec.Body)
			Expect(*body.Bio).To(Equal("Also selling a bike"))
			Expect(*body.University).To(Equal("LUMS"))

			stored, _ := app.Store.Get(primary.ID)
			Expect(*stored.Bio).To(Equal("Also selling a bike"))
			Expect(app.Publisher.PublishJSONCallCount()).To(Equal(1))
		})

		It("rejects invalid fields", func() {
			rec := as(primary, testkit.RequestFactory{
				Method:  http.MethodPut,
				Target:  "/api/v1/users/profile",
				JSONObj: map[string]any{"phone_number": "call me", "profile_image_url": "ftp://x/y.txt"},
			})
			Expect(rec.Code).To(Equal(http.StatusUnprocessableEntity))

			body := testkit.DecodeJSON[testkit.Envelope[any]](rec.Body)
			Expect(body.Error).To(HaveKey("phone_number"))
			Expect(body.Error).To(HaveKey("profile_image_url"))
		})

		It("returns 404 when the account vanished after authentication", func() {
			app.Repo.UpdateReturns(repository.ErrNotFound)

			rec := as(primary, testkit.RequestFactory{
				Method:  http.MethodPut,
				Target:  "/api/v1/users/profile",
				JSONObj: map[string]any{"bio": "gone"},
			})
			Expect(rec.Code).To(Equal(http.StatusNotFound))
			Expect(testkit.DecodeJSON[testkit.Envelope[any]](rec.Body).Message).To(Equal("User not found"))
		})
	})

	Describe("verification", func() {
		It("accepts an email verification token as a stub", func() {
			rec := testkit.RequestFactory{
				Method:  http.MethodPost,
				Target:  "/api/v1/users/verify-email",
				JSONObj: map[string]any{"token": "abc123"},
			}.Serve(app.Engine)
			Expect(rec.Code).To(Equal(http.StatusOK))

			body := testkit.DecodeJSON[testkit.Envelope[schema.EmailVerificationData]](rec.Body)
			Expect(body.Message).To(Equal("Email verification endpoint (stub implementation)"))
			Expect(body.Data.Token).To(Equal("abc123"))
		})

		It("requires a token to verify an email", func() {
			rec := testkit.RequestFactory{Method: http.MethodPost, Target: "/api/v1/users/verify-email", RawBody: "{}"}.Serve(app.Engine)
			Expect(rec.Code).To(Equal(http.StatusUnprocessableEntity))
		})

		It("submits an ID image for manual review", func() {
			rec := as(fresh, testkit.RequestFactory{
				Method:  http.MethodPost,
				Target:  "/api/v1/users/upload-id",
				JSONObj: map[string]any{"id_image_url": "https://cdn.example.com/ids/front.png", "notes": "student card"},
			})
			Expect(rec.Code).To(Equal(http.StatusOK))

			body := testkit.DecodeJSON[testkit.Envelope[schema.IDUploadData]](rec.Body)
			Expect(body.Message).To(Equal("ID uploaded successfully. Manual verification pending."))
			Expect(body.Data.Status).To(Equal("pending_review"))

			stored, _ := app.Store.Get(fresh.ID)
			Expect(stored.VerificationStatus).To(Equal(entity.StatusPendingReview))
			Expect(*stored.VerificationNotes).To(Equal("ID uploaded: https://cdn.example.com/ids/front.png"))

			_, job := app.Publisher.PublishJSONArgsForCall(0)
			Expect(job.(mailer.EmailJob).To).To(Equal(testkit.AdminReviewEmail))
			Expect(job.(mailer.EmailJob).Template).To(Equal(templates.IDReviewRequested))

			rec = as(fresh, testkit.RequestFactory{Method: http.MethodGet, Target: "/api/v1/users/verification-status"})
			status := testkit.DecodeJSON[testkit.Envelope[schema.VerificationStatusData]](rec.Body)
			Expect(status.Message).To(Equal("Verification status retrieved"))
			Expect(status.Data.VerificationStatus).To(Equal("pending_review"))
			Expect(status.Data.IsVerified).To(BeFalse())
			Expect(*status.Data.VerificationNotes).To(HavePrefix("ID uploaded: "))
		})

		It("rejects an ID URL that is not http(s)", func() {
			rec := as(fresh, testkit.RequestFactory{
				Method:  http.MethodPost,
				Target:  "/api/v1/users/upload-id",
				JSONObj: map[string]any{"id_image_url": "ftp://cdn.example.com/ids/front.png"},
			})
			Expect(rec.Code).To(Equal(http.StatusUnprocessableEntity))
			Expect(testkit.DecodeJSON[testkit.Envelope[any]](rec.Body).Error).To(HaveKey("id_image_url"))
		})

		It("accepts a signed ID URL with a query string", func() {
			signed := "https://storage.googleapis.com/campus/ids/front.jpg?X-Goog-Signature=abc&X-Goog-Expires=900"
			rec := as(fresh, testkit.RequestFactory{
				Method:  http.MethodPost,
				Target:  "/api/v1/users/upload-id",
				JSONObj: map[string]any{"id_image_url": signed},
			})
			Expect(rec.Code).To(Equal(http.StatusOK))
		})

		It("uploads an ID document file", func() {
			rec := as(fresh, testkit.RequestFactory{
				Method: http.MethodPost,
				Target: "/api/v1/users/upload-id/file",
				File: &testkit.File{
					Name:        "card.pdf",
					ContentType: "application/pdf",
					Content:     []byte("%PDF-1.7"),
					Fields:      map[string]string{"notes": "both sides"},
				},
			})
			Expect(rec.Code).To(Equal(http.StatusOK))

			Expect(app.Objects.Uploads).To(HaveLen(1))
			Expect(app.Objects.Uploads[0].Path).To(HavePrefix("id-documents/" + fresh.ID + "/"))
			body := testkit.DecodeJSON[testkit.Envelope[schema.IDUploadData]](rec.Body)
			Expect(body.Data.IDImageURL).To(ContainSubstring(app.Objects.Uploads[0].Path))
			Expect(*body.Data.Notes).To(Equal("both sides"))
		})

		It("rejects an ID document of an unsupported type", func() {
			rec := as(fresh, testkit.RequestFactory{
				Method: http.MethodPost,
				Target: "/api/v1/users/upload-id/file",
				File:   &testkit.File{Name: "card.docx", ContentType: "application/msword", Content: []byte("x")},
			})
			Expect(rec.Code).To(Equal(http.StatusUnprocessableEntity))
			Expect(app.Objects.Uploads).To(BeEmpty())
		})

		It("refuses to resend when the email is already verified", func() {
			rec := as(primary, testkit.RequestFactory{Method: http.MethodPost, Target: "/api/v1/users/resend-verification"})
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(testkit.DecodeJSON[testkit.Envelope[any]](rec.Body).Message).To(Equal("Email already verified"))
		})

		It("resends the verification email as a stub", func() {
			rec := as(fresh, testkit.RequestFactory{Method: http.MethodPost, Target: "/api/v1/users/resend-verification"})
			Expect(rec.Code).To(Equal(http.StatusOK))
			body := testkit.DecodeJSON[testkit.Envelope[schema.ResendVerificationData]](rec.Body)
			Expect(body.Message).To(Equal("Verification email resent (stub implementation)"))
			Expect(body.Data.Email).To(Equal(fresh.Email))
		})
	})

	Describe("POST /api/v1/users/profile/avatar", func() {
		It("stores the image and updates the profile", func() {
			rec := as(primary, testkit.RequestFactory{
				Method: http.MethodPost,
				Target: "/api/v1/users/profile/avatar",
				File:   &testkit.File{Name: "me.webp", ContentType: "image/webp", Content: []byte("RIFF")},
			})
			Expect(rec.Code).To(Equal(http.StatusOK))

			body := testkit.DecodeJSON[testkit.Envelope[schema.UserResponse]](rec.Body)
			Expect(*body.Data.ProfileImageURL).To(ContainSubstring("avatars/" + primary.ID + "/"))
		})

		It("requires a file", func() {
			rec := as(primary, testkit.RequestFactory{Method: http.MethodPost, Target: "/api/v1/users/profile/avatar", RawBody: "{}"})
			Expect(rec.Code).To(Equal(http.StatusUnprocessableEntity))
		})
	})

	Describe("public profiles", func() {
		It("shows the public view of an active user", func() {
			rec := testkit.RequestFactory{Method: http.MethodGet, Target: "/api/v1/users/" + primary.ID}.Serve(app.Engine)
			Expect(rec.Code).To(Equal(http.StatusOK))

			raw := testkit.DecodeJSON[testkit.Envelope[map[string]any]](rec.Body)
			Expect(raw.Data).To(HaveKeyWithValue("full_name", "Ayesha Khan"))
			Expect(raw.Data).To(HaveKeyWithValue("member_since", HaveSuffix("months ago")))
			Expect(raw.Data).NotTo(HaveKey("email"))
			Expect(raw.Data).NotTo(HaveKey("phone_number"))
		})

		It("hides inactive and unknown users", func() {
			for _, id := range []string{testkit.InactiveUserID, "does-not-exist"} {
				rec := testkit.RequestFactory{Method: http.MethodGet, Target: "/api/v1/users/" + id}.Serve(app.Engine)
				Expect(rec.Code).To(Equal(http.StatusNotFound))
			}
		})

		It("returns no search results without a search backend", func() {
			rec := testkit.RequestFactory{Method: http.MethodGet, Target: "/api/v1/users/search?q=calculus"}.Serve(app.Engine)
			Expect(rec.Code).To(Equal(http.StatusOK))
			body := testkit.DecodeJSON[testkit.Envelope[[]map[string]any]](rec.Body)
			Expect(body.Data).To(BeEmpty())
			Expect(body.Meta).To(HaveKeyWithValue("count", BeNumerically("==", 0)))
		})
	})
})
