package dropbox

// Package dropbox is the remote image source: PKCE authorization through
// golang.org/x/oauth2 and recursive listing plus download through the Dropbox
// Go SDK. Listing keeps files whose name ends with one of the accepted
// suffixes; matching is case-sensitive.
