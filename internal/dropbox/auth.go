package dropbox

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/ytget/gallery-viewer/internal/logger"
)

// DefaultClientID is the public app key of the viewer. PKCE apps have no
// client secret.
const DefaultClientID = "m35223alvo00gb2"

// OAuth endpoints
const (
	AuthURL  = "https://www.dropbox.com/oauth2/authorize"
	TokenURL = "https://api.dropboxapi.com/oauth2/token"
)

// NewOAuthConfig returns the PKCE configuration for clientID. Without a
// redirect URL Dropbox shows the code on its own page for the user to copy.
func NewOAuthConfig(clientID string) *oauth2.Config {
	if clientID == "" {
		clientID = DefaultClientID
	}
	return &oauth2.Config{
		ClientID: clientID,
		Endpoint: oauth2.Endpoint{
			AuthURL:   AuthURL,
			TokenURL:  TokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
}

// CodePrompter shows the authorization URL and returns the code the user pastes back.
type CodePrompter interface {
	PromptCode(ctx context.Context, authURL string) (string, error)
}

// Authorizer runs the interactive PKCE flow
type Authorizer struct {
	config   *oauth2.Config
	prompter CodePrompter
	openURL  func(string) error
}

// AuthOption configures an Authorizer
type AuthOption func(*Authorizer)

// WithBrowser makes the authorizer try to open the URL in a browser before prompting
func WithBrowser(open func(string) error) AuthOption {
	return func(a *Authorizer) {
		a.openURL = open
	}
}

// NewAuthorizer creates an authorizer for config that asks prompter for the code
func NewAuthorizer(config *oauth2.Config, prompter CodePrompter, opts ...AuthOption) *Authorizer {
	a := &Authorizer{
		config:   config,
		prompter: prompter,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Config returns the OAuth2 configuration in use
func (a *Authorizer) Config() *oauth2.Config {
	return a.config
}

// AuthCodeURL builds the authorization URL for verifier. Offline access is
// requested so the token carries a refresh token.
func (a *Authorizer) AuthCodeURL(state, verifier string) string {
	return a.config.AuthCodeURL(state,
		oauth2.S256ChallengeOption(verifier),
		oauth2.SetAuthURLParam("token_access_type", "offline"),
	)
}

// Authorize asks the user to approve access and exchanges the returned code
// for a token.
func (a *Authorizer) Authorize(ctx context.Context) (*oauth2.Token, error) {
	verifier := oauth2.GenerateVerifier()
	authURL := a.AuthCodeURL(uuid.NewString(), verifier)

	logger.Info("Authorization required", "url", authURL)

	if a.openURL != nil {
		if err := a.openURL(authURL); err != nil {
			logger.Debug("Could not open browser", "error", err)
		}
	}

	code, err := a.prompter.PromptCode(ctx, authURL)
	if err != nil {
		return nil, err
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrNoAuthCode
	}

	token, err := a.config.Exchange(ctx, code, oauth2.VerifierOption(verifier))
	if err != nil {
		return nil, fmt.Errorf("exchange authorization code: %w", err)
	}

	logger.Debug("Authorization complete", "has_refresh_token", token.RefreshToken != "")
	return token, nil
}

// ConsolePrompter prints the URL to out and reads one line from in.
// A single goroutine reads in for the lifetime of the prompter, so a line
// typed after a prompt was cancelled is handed to the next prompt.
type ConsolePrompter struct {
	in  *bufio.Reader
	out io.Writer

	once  sync.Once
	lines chan consoleLine
}

type consoleLine struct {
	text string
	err  error
}

// NewConsolePrompter creates a prompter over the given streams, typically stdin and stderr
func NewConsolePrompter(in io.Reader, out io.Writer) *ConsolePrompter {
	return &ConsolePrompter{
		in:    bufio.NewReader(in),
		out:   out,
		lines: make(chan consoleLine),
	}
}

// PromptCode implements CodePrompter
func (p *ConsolePrompter) PromptCode(ctx context.Context, authURL string) (string, error) {
	fmt.Fprintln(p.out, "Open this URL in your browser:")
	fmt.Fprintln(p.out, authURL)
	fmt.Fprintln(p.out)
	fmt.Fprint(p.out, "Then paste the code here: ")

	p.once.Do(func() { go p.readLines() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-p.lines:
		if !ok {
			return "", fmt.Errorf("read authorization code: %w", io.EOF)
		}
		if line.err != nil {
			return "", fmt.Errorf("read authorization code: %w", line.err)
		}
		return line.text, nil
	}
}

// readLines forwards input lines until the first read error, then closes lines
func (p *ConsolePrompter) readLines() {
	defer close(p.lines)

	for {
		text, err := p.in.ReadString('\n')
		if err == io.EOF && text != "" {
			p.lines <- consoleLine{text: strings.TrimSpace(text)}
		}
		if err != nil {
			p.lines <- consoleLine{err: err}
			return
		}
		p.lines <- consoleLine{text: strings.TrimSpace(text)}
	}
}
