// Package ingestion turns job postings into clean plain text, either from a
// local file or by fetching a job board URL.
package ingestion

import (
	"context"
	"fmt"
	"log"

	"github.com/jonathan/resume-matcher/internal/fetch"
)

var (
	// ErrHTTPRequestFailed is returned when HTTP request fails
	ErrHTTPRequestFailed = fmt.Errorf("HTTP request failed")
	// ErrContentExtractionFailed is returned when content extraction fails
	ErrContentExtractionFailed = fmt.Errorf("content extraction failed")
)

// IngestFromURL fetches a job posting URL, extracts the description text, and
// returns it cleaned. Platform detection picks content selectors suited to
// the job board. If useBrowser is true, SPA pages with too little static
// content fall back to headless browser rendering. If verbose is true, the
// extraction steps are logged.
func IngestFromURL(ctx context.Context, urlStr string, useBrowser bool, verbose bool) (string, error) {
	// Detect platform for platform-specific selectors
	platform := fetch.DetectPlatform(urlStr)
	if verbose {
		log.Printf("[VERBOSE] URL: %s", urlStr)
		log.Printf("[VERBOSE] Detected platform: %s", platform)
	}

	// Fetch HTML using the generic fetch package
	result, err := fetch.URL(ctx, urlStr, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}
	if verbose {
		log.Printf("[VERBOSE] Fetched HTML: %d bytes", len(result.HTML))
	}

	// Extract text using platform-specific selectors and noise removal
	contentSelectors := fetch.PlatformContentSelectors(platform)
	noiseSelectors := fetch.PlatformNoiseSelectors(platform)

	textContent, err := fetch.ExtractMainText(result.HTML, contentSelectors, noiseSelectors...)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}
	if verbose {
		log.Printf("[VERBOSE] Extracted text: %d chars", len(textContent))
	}

	// Check if we should use browser fallback for SPA sites
	if useBrowser && fetch.ShouldUseBrowser(textContent) {
		if verbose {
			log.Printf("[VERBOSE] Content too short (%d chars < %d), falling back to browser rendering...",
				len(textContent), fetch.MinContentLength)
		}

		browserHTML, browserErr := fetch.BrowserSimple(ctx, urlStr, verbose)
		if browserErr != nil {
			if verbose {
				log.Printf("[VERBOSE] Browser rendering failed: %v, using HTTP content", browserErr)
			}
			// Continue with HTTP content if browser fails
		} else if browserText, extractErr := fetch.ExtractMainText(browserHTML, contentSelectors, noiseSelectors...); extractErr == nil {
			textContent = browserText
			if verbose {
				log.Printf("[VERBOSE] Browser extracted text: %d chars", len(textContent))
			}
		}
	}

	cleanedText := CleanText(textContent)
	if verbose {
		log.Printf("[VERBOSE] Cleaned text: %d chars", len(cleanedText))
	}

	return cleanedText, nil
}
