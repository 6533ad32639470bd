// Package collect gathers the named external signal bags (performance,
// mobile, seo, security, social) for a page. Collectors run concurrently
// and each failure is isolated: a failing collector degrades to an empty
// bag rather than aborting the run.
package collect
