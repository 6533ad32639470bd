// Package main provides the entry point for the WebBoost CLI.
//
// WebBoost analyzes web pages and scores their quality across nine
// criteria: readability, informativeness, engagement, uniqueness,
// discoverability, ad experience, social integration, layout quality,
// and SEO.
//
// Usage:
//
//	webboost analyze <url>
//	webboost analyze <url1> <url2> <url3>
//
// See --help for all available options.
package main

// main is the entry point for WebBoost.
func main() {
	Execute()
}
