package helpcenter

import (
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/sentriguide/sentriguide-go/internal/model"
	"go.uber.org/zap"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

var resultClassRe = regexp.MustCompile(`(result|search|article|card)`)

// Client 帮助中心检索客户端。
// 抓取官方搜索页并解析文章条目；任何失败都回退到内置文章目录，不向上抛错。
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient 创建帮助中心客户端
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// FetchArticles 按关键词搜索帮助中心文章，失败时返回兜底目录。
// query 为 "fallback" 时直接返回内置目录。
func (c *Client) FetchArticles(query string) []model.Article {
	if query == "fallback" {
		return FallbackArticles()
	}

	articles, err := c.search(query)
	if err != nil {
		c.logger.Warn("帮助中心检索失败，使用兜底目录",
			zap.String("query", query),
			zap.Error(err))
		return FallbackArticles()
	}
	if len(articles) == 0 {
		c.logger.Info("帮助中心无检索结果，使用兜底目录", zap.String("query", query))
		return FallbackArticles()
	}
	return articles
}

func (c *Client) search(query string) ([]model.Article, error) {
	searchURL := fmt.Sprintf("%s/en-us/search?q=%s", c.baseURL, url.QueryEscape(query))

	req, err := http.NewRequest(http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("构建请求失败: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP 请求失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("帮助中心返回状态码 %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("解析 HTML 失败: %w", err)
	}

	var articles []model.Article
	doc.Find("article, div, a").Each(func(_ int, sel *goquery.Selection) {
		class, _ := sel.Attr("class")
		if !resultClassRe.MatchString(class) {
			return
		}

		titleElem := sel.Find("h1, h2, h3, h4, span, a").First()
		title := strings.TrimSpace(titleElem.Text())
		if title == "" {
			return
		}

		link, _ := sel.Attr("href")
		if link == "" && goquery.NodeName(titleElem) == "a" {
			link, _ = titleElem.Attr("href")
		}
		if link != "" && !strings.HasPrefix(link, "http") {
			link = c.baseURL + link
		}
		if link == "" {
			link = c.baseURL + "/en-us/"
		}

		if len(title) > 10 && len(title) < 200 {
			snippet := title
			if len(snippet) > 150 {
				snippet = snippet[:150]
			}
			articles = append(articles, model.Article{Title: title, Link: link, Snippet: snippet})
		}
	})

	// 按标题去重，保留前 5 条
	seen := make(map[string]bool)
	unique := make([]model.Article, 0, len(articles))
	for _, a := range articles {
		if seen[a.Title] {
			continue
		}
		seen[a.Title] = true
		unique = append(unique, a)
		if len(unique) == 5 {
			break
		}
	}

	return unique, nil
}
