package tests

import (
	"fmt"
	"strings"
	"testing"

	"github.com/ib-77/mcoro/pkg/mcoro"
	"github.com/ib-77/mcoro/pkg/mcoro/executor"
	"github.com/ib-77/mcoro/pkg/mcoro/future"

	"github.com/stretchr/testify/assert"
)

// TestURLProcessingDirectly tests a validate -> fetch -> measure pipeline
// built from future/executor primitives, without making HTTP requests.
func TestURLProcessingDirectly(t *testing.T) {
	urls := []string{
		// Valid by structure (never actually fetched).
		"https://www.example.com",
		"https://www.test.org",
		"https://www.google.com",
		"https://www.microsoft.com",
		"https://www.micros---oft.com",
		"https://www.mic--ros---oft.com",

		// Invalid by structure.
		"invalid-url",
		"ftp://invalid-protocol.com",
	}

	results := processURLs(urls)

	fmt.Println("Test Results:")
	for i, res := range results {
		fmt.Printf("%d. %s - %s\n", i+1, urls[i], res)
	}

	validCount, invalidCount := 0, 0
	for _, res := range results {
		if res == "invalid" {
			invalidCount++
		} else {
			validCount++
		}
	}
	fmt.Printf("\nSummary: %d valid results, %d invalid results\n", validCount, invalidCount)

	assert.Equal(t, len(urls), len(results))
	assert.Equal(t, 2, invalidCount)
}

func processURLs(urls []string) []string {
	pool := executor.NewPool(2)
	defer pool.Close()

	pending := make([]*future.Future[string], len(urls))
	for i, u := range urls {
		pending[i] = urlPipeline(u, pool)
	}

	done := make(chan struct{})
	var out []string
	future.WhenAll(pending).Done(func(r mcoro.Result[[]string]) {
		defer close(done)
		out = r.Value()
	})
	<-done

	return out
}

func urlPipeline(url string, pool *executor.Pool) *future.Future[string] {
	f := future.ThenTry(future.MakeSuccessful(url), func(u string) (string, error) {
		if !validateURLTest(u) {
			return "", fmt.Errorf("invalid URL")
		}
		return u, nil
	})

	f = f.Enqueue(pool)

	f = future.ThenTry(f, mockFetchTitle)

	title := future.Map(f, func(title string) int { return len(title) })

	return future.Map(title, func(n int) string {
		return fmt.Sprintf("title length: %d", n)
	}).Fail(func(err error) future.CallbackResult[string] {
		return future.Value("invalid")
	})
}

// mockFetchTitle simulates fetching a title without making HTTP requests.
func mockFetchTitle(url string) (string, error) {
	if !validateURLTest(url) {
		return "", fmt.Errorf("invalid URL")
	}
	return "Mock Page Title for " + url, nil
}

func validateURLTest(url string) bool {
	return strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}
