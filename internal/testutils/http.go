package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "lead-dashboard-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// HTTPTestSuite wraps a bare gin engine for handler and middleware tests
type HTTPTestSuite struct {
	Router *gin.Engine
}

// SetupHTTPTest initializes Gin for testing
func SetupHTTPTest() *HTTPTestSuite {
	gin.SetMode(gin.TestMode)
	return &HTTPTestSuite{Router: gin.New()}
}

// MakeRequest executes a request with an optional JSON body
func (suite *HTTPTestSuite) MakeRequest(method, url string, body interface{}) *httptest.ResponseRecorder {
	return suite.MakeRequestWithHeaders(method, url, body, nil)
}

// MakeRequestWithHeaders executes a request with an optional JSON body and extra headers.
// A string body is sent verbatim so tests can post malformed JSON.
func (suite *HTTPTestSuite) MakeRequestWithHeaders(method, url string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var reqBody io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reqBody = bytes.NewBufferString(b)
	default:
		jsonBytes, _ := json.Marshal(b)
		reqBody = bytes.NewBuffer(jsonBytes)
	}

	req := httptest.NewRequest(method, url, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	recorder := httptest.NewRecorder()
	suite.Router.ServeHTTP(recorder, req)
	return recorder
}

// AssertJSONResponse asserts the response status and unmarshals JSON response
func AssertJSONResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, target interface{}) {
	t.Helper()
	assert.Equal(t, expectedStatus, recorder.Code)
	assert.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))

	if target != nil {
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), target))
	}
}

// errorBody mirrors the JSON error envelope written by the API
type errorBody struct {
	Error string         `json:"error"`
	Kind  apperrors.Kind `json:"kind"`
}

// AssertErrorResponse asserts an error response whose message contains expectedMessage
func AssertErrorResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, expectedMessage string) {
	t.Helper()
	assert.Equal(t, expectedStatus, recorder.Code)

	var body errorBody
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Error)
	if expectedMessage != "" {
		assert.Contains(t, body.Error, expectedMessage)
	}
}

// AssertErrorKind asserts an error response of the given status and taxonomy kind
func AssertErrorKind(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, kind apperrors.Kind) {
	t.Helper()
	assert.Equal(t, expectedStatus, recorder.Code)

	var body errorBody
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, kind, body.Kind)
}

// AssertOK asserts the {"ok":true} acknowledgement returned by mutations
func AssertOK(t *testing.T, recorder *httptest.ResponseRecorder) {
	t.Helper()
	assert.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		OK bool `json:"ok"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.True(t, body.OK)
}
