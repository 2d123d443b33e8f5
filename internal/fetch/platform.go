// Package fetch - platform.go recognizes the job boards postings are
// ingested from and picks scraping selectors per board.
package fetch

import (
	"net/url"
	"strings"
)

// Platform is a recognized job board.
type Platform string

const (
	// PlatformGreenhouse covers boards.greenhouse.io postings
	PlatformGreenhouse Platform = "greenhouse"
	// PlatformLever covers jobs.lever.co postings
	PlatformLever Platform = "lever"
	// PlatformWorkday covers myworkdayjobs.com postings
	PlatformWorkday Platform = "workday"
	// PlatformLinkedIn covers linkedin.com job views
	PlatformLinkedIn Platform = "linkedin"
	// PlatformIndeed covers indeed.com viewjob pages
	PlatformIndeed Platform = "indeed"
	// PlatformUnknown falls back to the generic job-posting selectors
	PlatformUnknown Platform = "unknown"
)

// platformHosts maps hostname fragments to platforms. Fragments, not exact
// hosts: boards live on company subdomains (acme.greenhouse.io,
// acme.wd5.myworkdayjobs.com).
var platformHosts = []struct {
	fragment string
	platform Platform
}{
	{"greenhouse.io", PlatformGreenhouse},
	{"lever.co", PlatformLever},
	{"myworkdayjobs.com", PlatformWorkday},
	{"workday.com", PlatformWorkday},
	{"linkedin.com", PlatformLinkedIn},
	{"indeed.com", PlatformIndeed},
}

// DetectPlatform identifies the job board serving a posting URL.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}

	host := strings.ToLower(parsed.Host)
	for _, entry := range platformHosts {
		if strings.Contains(host, entry.fragment) {
			return entry.platform
		}
	}
	return PlatformUnknown
}

// PlatformContentSelectors returns the selectors most likely to isolate the
// job description on a given board, best candidate first.
func PlatformContentSelectors(platform Platform) []string {
	switch platform {
	case PlatformGreenhouse:
		return []string{
			".job__description.body",
			".job__description",
			".job-description__content",
			"#content",
			".job-post-container",
		}
	case PlatformLever:
		return []string{
			".posting-page",
			".section-wrapper.page-full-width",
			".posting-description",
			".content",
		}
	case PlatformWorkday:
		return []string{
			"[data-automation-id='jobDescription']",
			".WDXK",
			".gwt-HTML",
			".job-description",
		}
	case PlatformLinkedIn:
		return []string{
			".description__text",
			".show-more-less-html__markup",
			".jobs-description-content",
		}
	case PlatformIndeed:
		return []string{
			"#jobDescriptionText",
			".jobsearch-JobComponent-description",
		}
	default:
		return JobPostingSelectors()
	}
}

// noiseCommon is stripped from every board before extraction: application
// forms, EEO boilerplate, share widgets and consent banners would otherwise
// pollute skill extraction and the ATS token overlap.
var noiseCommon = []string{
	"form",
	"#application-form",
	".application-form",
	".application--container",
	".apply-button-container",
	"[data-testid='application-form']",

	".voluntary-disclosure",
	".eeo-statement",
	".eeo-section",
	"[data-testid='eeo']",
	".legal-disclosure",
	".self-identification",

	".social-share",
	".share-buttons",
	".social-links",

	".cookie-banner",
	".cookie-consent",
	".gdpr-notice",
}

// PlatformNoiseSelectors returns elements to remove before text extraction
// for a given board.
func PlatformNoiseSelectors(platform Platform) []string {
	switch platform {
	case PlatformGreenhouse:
		return append(noiseCommon,
			".application--wrapper",
			".voluntary-self-id",
			".voluntary-self-id-wrapper",
			"#usa_self_id_section",
			".post-apply",
		)
	case PlatformLever:
		return append(noiseCommon,
			".apply-section",
			".lever-application-form",
			".posting-apply",
		)
	case PlatformWorkday:
		return append(noiseCommon,
			"[data-automation-id='applyButton']",
			".application-section",
			".WDAF",
		)
	case PlatformLinkedIn:
		return append(noiseCommon,
			".top-card-layout",
			".similar-jobs",
			".apply-button",
		)
	case PlatformIndeed:
		return append(noiseCommon,
			"#applyButtonLinkContainer",
			".jobsearch-CompanyReview",
		)
	default:
		return noiseCommon
	}
}
