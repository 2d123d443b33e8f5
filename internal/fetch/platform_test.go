package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want Platform
	}{
		{"greenhouse board", "https://boards.greenhouse.io/acme/jobs/123", PlatformGreenhouse},
		{"greenhouse company subdomain", "https://acme.greenhouse.io/jobs/123", PlatformGreenhouse},
		{"lever posting", "https://jobs.lever.co/acme/abc-def", PlatformLever},
		{"workday subdomain", "https://acme.wd5.myworkdayjobs.com/en-US/careers/job/123", PlatformWorkday},
		{"linkedin job view", "https://www.linkedin.com/jobs/view/3856", PlatformLinkedIn},
		{"indeed viewjob", "https://www.indeed.com/viewjob?jk=abc123", PlatformIndeed},
		{"company careers page", "https://acme.com/careers/backend-engineer", PlatformUnknown},
		{"unparseable", "://not a url", PlatformUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectPlatform(tt.url))
		})
	}
}

func TestPlatformContentSelectors_KnownBoards(t *testing.T) {
	assert.Contains(t, PlatformContentSelectors(PlatformGreenhouse), ".job__description")
	assert.Contains(t, PlatformContentSelectors(PlatformLever), ".posting-description")
	assert.Contains(t, PlatformContentSelectors(PlatformWorkday), "[data-automation-id='jobDescription']")
	assert.Contains(t, PlatformContentSelectors(PlatformLinkedIn), ".description__text")
	assert.Contains(t, PlatformContentSelectors(PlatformIndeed), "#jobDescriptionText")
}

func TestPlatformContentSelectors_UnknownFallsBackToGeneric(t *testing.T) {
	assert.Equal(t, JobPostingSelectors(), PlatformContentSelectors(PlatformUnknown))
}

func TestPlatformNoiseSelectors_IncludeCommonNoise(t *testing.T) {
	for _, platform := range []Platform{
		PlatformGreenhouse, PlatformLever, PlatformWorkday,
		PlatformLinkedIn, PlatformIndeed, PlatformUnknown,
	} {
		selectors := PlatformNoiseSelectors(platform)
		assert.Contains(t, selectors, "form", "platform %s strips application forms", platform)
		assert.Contains(t, selectors, ".cookie-banner", "platform %s strips consent banners", platform)
	}
}

func TestPlatformNoiseSelectors_BoardSpecific(t *testing.T) {
	assert.Contains(t, PlatformNoiseSelectors(PlatformGreenhouse), ".post-apply")
	assert.Contains(t, PlatformNoiseSelectors(PlatformLever), ".posting-apply")
	assert.Contains(t, PlatformNoiseSelectors(PlatformWorkday), "[data-automation-id='applyButton']")
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser(""))
	assert.True(t, ShouldUseBrowser("   \n  "))
	assert.True(t, ShouldUseBrowser("Apply now"))

	longDescription := ""
	for i := 0; i < 60; i++ {
		longDescription += "We are hiring a backend engineer with Go experience. "
	}
	assert.False(t, ShouldUseBrowser(longDescription))
}
