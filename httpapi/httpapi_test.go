package httpapi

import (
	"archive/zip"
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akshara/lipi/ocr"
)

type fakeEngine struct {
	text string
}

func (f fakeEngine) Name() string { return "fake" }

func (f fakeEngine) Recognize(ctx context.Context, in ocr.Input) (ocr.Result, error) {
	return ocr.Result{InputID: in.ID, PlainText: f.text, Confidence: 0.9}, nil
}

func newTestServer(t *testing.T, opts ...Option) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(New(opts...).Router())
	t.Cleanup(srv.Close)
	return srv
}

func multipartUpload(t *testing.T, url, filename string, data []byte, fields map[string][]string) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if filename != "" {
		part, err := mw.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	for key, values := range fields {
		for _, v := range values {
			require.NoError(t, mw.WriteField(key, v))
		}
	}
	require.NoError(t, mw.Close())

	resp, err := http.Post(url, mw.FormDataContentType(), &buf)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(RequestIDHeader))

	var body map[string]string
	require.NoError(t, sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

func TestJSONConvert(t *testing.T) {
	srv := newTestServer(t)
	payload := `{"text":"raama siitaa","targets":["devanagari","iast"]}`
	resp, err := http.Post(srv.URL+"/api/transliterate", "application/json", bytes.NewReader([]byte(payload)))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out ConvertResponse
	require.NoError(t, sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out.Outputs, 2)
	assert.Equal(t, "राम सीता", out.Outputs[0].Text)
	assert.Equal(t, "rāma sītā", out.Outputs[1].Text)
	assert.Equal(t, 2, out.Outputs[0].Report.Converted)
	assert.Equal(t, 1, out.Outputs[0].Report.Passthrough)
}

func TestJSONConvertForcedSource(t *testing.T) {
	srv := newTestServer(t)
	payload := `{"text":"rAma","source":"hk","targets":["devanagari"]}`
	resp, err := http.Post(srv.URL+"/api/transliterate", "application/json", bytes.NewReader([]byte(payload)))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out ConvertResponse
	require.NoError(t, sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out.Outputs, 1)
	assert.Equal(t, "राम", out.Outputs[0].Text)
}

func TestJSONConvertBadTarget(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Post(srv.URL+"/api/transliterate", "application/json",
		bytes.NewReader([]byte(`{"text":"rāma","targets":["klingon"]}`)))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestJSONConvertNoTargets(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Post(srv.URL+"/api/transliterate", "application/json",
		bytes.NewReader([]byte(`{"text":"rāma"}`)))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUploadSingleTarget(t *testing.T) {
	srv := newTestServer(t)
	resp := multipartUpload(t, srv.URL+"/transliterate", "verse.txt", []byte("rāma"),
		map[string][]string{"tgt": {"devanagari"}})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/plain")
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "राम", string(body))
}

func TestUploadMultipleTargetsReturnsZip(t *testing.T) {
	srv := newTestServer(t)
	resp := multipartUpload(t, srv.URL+"/transliterate", "verse.txt", []byte("rāma"),
		map[string][]string{"tgt": {"devanagari", "itrans"}})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/zip", resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	zr, err := zip.NewReader(bytes.NewReader(body), int64(len(body)))
	require.NoError(t, err)
	require.Len(t, zr.File, 2)
	assert.Equal(t, "verse__DEVANAGARI.txt", zr.File[0].Name)
	assert.Equal(t, "verse__ITRANS.txt", zr.File[1].Name)

	rc, err := zr.File[0].Open()
	require.NoError(t, err)
	defer rc.Close()
	text, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "राम", string(text))
}

func TestUploadImageUsesOCR(t *testing.T) {
	srv := newTestServer(t, WithEngine(fakeEngine{text: "राम"}))

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(0, 0, color.White)
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	resp := multipartUpload(t, srv.URL+"/transliterate", "scan.png", buf.Bytes(),
		map[string][]string{"tgt": {"iast"}, "ocr_lang": {"san+eng"}})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "rāma", string(body))
}

func TestUploadMissingFile(t *testing.T) {
	srv := newTestServer(t)
	resp := multipartUpload(t, srv.URL+"/transliterate", "", nil,
		map[string][]string{"tgt": {"iast"}})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
