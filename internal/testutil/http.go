package testutil

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/dalemusser/profilehub/internal/app/system/auth"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Claims returns token claims for a fresh fake user.
func Claims() *auth.Claims {
	return &auth.Claims{
		ID:    primitive.NewObjectID().Hex(),
		Email: "user@example.com",
	}
}

// NewAuthenticatedRequest creates a request with verified claims already
// in context, bypassing cookie verification.
func NewAuthenticatedRequest(method, target string, body io.Reader, claims *auth.Claims) *http.Request {
	req := httptest.NewRequest(method, target, body)
	return auth.WithTestClaims(req, claims)
}

// NewJSONRequest creates a request with a JSON body.
func NewJSONRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// NewImageUpload builds a multipart request with one "file" part of the
// given content type, as the image upload endpoint expects.
func NewImageUpload(t *testing.T, target, contentType string, data []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", `form-data; name="file"; filename="upload"`)
	hdr.Set("Content-Type", contentType)
	part, err := mw.CreatePart(hdr)
	if err != nil {
		t.Fatalf("create multipart part: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("write multipart part: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	req := httptest.NewRequest("POST", target, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}
