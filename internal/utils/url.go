package utils

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// DefaultDeployDomain is the suffix of generated deployment URLs.
const DefaultDeployDomain = "vercel.app"

var whitespaceRuns = regexp.MustCompile(`\s+`)

// ProjectSlug lowercases a project name and collapses whitespace runs into
// single hyphens.
func ProjectSlug(projectName string) string {
	return whitespaceRuns.ReplaceAllString(strings.ToLower(strings.TrimSpace(projectName)), "-")
}

// DeploymentURL builds the public URL a successful deployment reports.
// The domain can be overridden with the DEPLOY_BASE_DOMAIN env var.
func DeploymentURL(projectName string) string {
	domain := os.Getenv("DEPLOY_BASE_DOMAIN")
	if domain == "" {
		domain = DefaultDeployDomain
	}
	return fmt.Sprintf("https://%s.%s", ProjectSlug(projectName), domain)
}
