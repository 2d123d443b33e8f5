package ingestion

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func servePosting(t *testing.T, html string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(html))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestIngestFromURL_RejectsBadURLs(t *testing.T) {
	for _, bad := range []string{"", "not-a-url", "example.com", "http://"} {
		t.Run(bad, func(t *testing.T) {
			_, err := IngestFromURL(context.Background(), bad, false, false)
			assert.Error(t, err)
		})
	}
}

func TestIngestFromURL_ExtractsCleanPosting(t *testing.T) {
	server := servePosting(t, `<!DOCTYPE html>
<html>
<body>
<nav>Careers home</nav>
<main>
<h1>Senior Go Engineer</h1>
<p>Build   the   matching   pipeline.</p>


<p>Remote friendly.</p>
</main>
<footer>© Acme Corp</footer>
</body>
</html>`)

	text, err := IngestFromURL(context.Background(), server.URL, false, false)
	require.NoError(t, err)

	assert.Contains(t, text, "Senior Go Engineer")
	// Extraction and cleaning run together: chrome is stripped, whitespace
	// runs are collapsed.
	assert.Contains(t, text, "Build the matching pipeline.")
	assert.Contains(t, text, "Remote friendly.")
	assert.NotContains(t, text, "Careers home")
	assert.NotContains(t, text, "Acme Corp")
}

func TestIngestFromURL_PropagatesHTTPStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := IngestFromURL(context.Background(), server.URL, false, false)
	assert.Error(t, err)
}

func TestIngestFromURL_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := IngestFromURL(context.Background(), url, false, false)
	assert.Error(t, err)
}
