package helpcenter

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

func newTestClient(baseURL string) *Client {
	return NewClient(baseURL, 2*time.Second, zap.NewNop())
}

func TestFetchArticlesParsesSearchResults(t *testing.T) {
	html := `<html><body>
		<div class="search-result"><a href="/en-us/how-to-renew/">How to Renew Your Trend Micro Product</a></div>
		<div class="search-result"><a href="/en-us/how-to-renew/">How to Renew Your Trend Micro Product</a></div>
		<div class="result-card"><h3>Installing and Activating Trend Micro Products</h3></div>
		<div class="unrelated"><a href="/x">Should Be Ignored Entirely</a></div>
	</body></html>`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") == "" {
			t.Errorf("expected search query parameter")
		}
		w.Write([]byte(html))
	}))
	defer srv.Close()

	articles := newTestClient(srv.URL).FetchArticles("renew")
	if len(articles) != 2 {
		t.Fatalf("expected 2 deduplicated articles, got %d", len(articles))
	}
	if articles[0].Title != "How to Renew Your Trend Micro Product" {
		t.Fatalf("unexpected first title: %q", articles[0].Title)
	}
	if !strings.HasPrefix(articles[0].Link, srv.URL) {
		t.Fatalf("expected relative link resolved against base URL, got %q", articles[0].Link)
	}
}

func TestFetchArticlesFallsBackOnHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	articles := newTestClient(srv.URL).FetchArticles("security")
	if len(articles) != len(FallbackArticles()) {
		t.Fatalf("expected fallback catalog on HTTP 500, got %d articles", len(articles))
	}
}

func TestFetchArticlesFallsBackOnEmptyResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body><p>nothing here</p></body></html>"))
	}))
	defer srv.Close()

	articles := newTestClient(srv.URL).FetchArticles("security")
	if len(articles) != len(FallbackArticles()) {
		t.Fatalf("expected fallback catalog on empty parse, got %d articles", len(articles))
	}
}

func TestFetchArticlesFallbackShortcut(t *testing.T) {
	articles := newTestClient("http://127.0.0.1:1").FetchArticles("fallback")
	if len(articles) == 0 {
		t.Fatalf("expected fallback catalog without network access")
	}
}

func TestFallbackCatalogCarriesRoutingTitles(t *testing.T) {
	// 知识路由按这些标题子串筛选主题文章
	required := []string{
		"How to Renew Your Trend Micro Product",
		"Installing and Activating Trend Micro Products",
		"Resolution Guard - Case Closure Quality Control",
		"Case Closure Confidence Analysis",
		"Account Portal Access and Login Issues",
		"Cashback Claims and Refund Requests",
	}

	titles := make(map[string]bool)
	for _, a := range FallbackArticles() {
		titles[a.Title] = true
	}
	for _, want := range required {
		if !titles[want] {
			t.Fatalf("fallback catalog missing load-bearing title %q", want)
		}
	}
}
