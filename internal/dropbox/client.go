package dropbox

import (
	"context"
	"fmt"
	"io"
	"strings"

	sdk "github.com/dropbox/dropbox-sdk-go-unofficial/v6/dropbox"
	"github.com/dropbox/dropbox-sdk-go-unofficial/v6/dropbox/files"
	"golang.org/x/oauth2"

	"github.com/ytget/gallery-viewer/internal/logger"
	"github.com/ytget/gallery-viewer/internal/model"
)

// FilesFactory builds a files API client for an SDK configuration
type FilesFactory func(cfg sdk.Config) files.Client

// Client lists and downloads images from a Dropbox account
type Client struct {
	oauth      *oauth2.Config
	root       string
	extensions []string
	newFiles   FilesFactory
}

// ClientOption configures a Client
type ClientOption func(*Client)

// WithRoot limits listing to a folder. "" and "/" mean the account root.
func WithRoot(root string) ClientOption {
	return func(c *Client) {
		c.root = normalizeRoot(root)
	}
}

// WithExtensions replaces DefaultExtensions
func WithExtensions(exts []string) ClientOption {
	return func(c *Client) {
		if len(exts) > 0 {
			c.extensions = exts
		}
	}
}

// WithFilesFactory replaces files.New, mainly for tests
func WithFilesFactory(f FilesFactory) ClientOption {
	return func(c *Client) {
		if f != nil {
			c.newFiles = f
		}
	}
}

// NewClient creates a client that signs requests with tokens from config
func NewClient(config *oauth2.Config, opts ...ClientOption) *Client {
	c := &Client{
		oauth:      config,
		extensions: DefaultExtensions,
		newFiles:   files.New,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Extensions returns the accepted suffixes
func (c *Client) Extensions() []string {
	return c.extensions
}

func (c *Client) files(ctx context.Context, token *oauth2.Token) files.Client {
	return c.newFiles(sdk.Config{
		Client: c.oauth.Client(ctx, token),
	})
}

// List returns every image under the root folder, recursively, in listing order.
func (c *Client) List(ctx context.Context, token *oauth2.Token) ([]model.RemoteImage, error) {
	fc := c.files(ctx, token)

	arg := files.NewListFolderArg(c.root)
	arg.Recursive = true

	res, err := fc.ListFolder(arg)
	if err != nil {
		return nil, fmt.Errorf("list folder %q: %w", c.displayRoot(), err)
	}

	var images []model.RemoteImage
	pages := 1
	for {
		images = c.appendImages(images, res.Entries)
		if !res.HasMore {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		res, err = fc.ListFolderContinue(files.NewListFolderContinueArg(res.Cursor))
		if err != nil {
			return nil, fmt.Errorf("continue listing %q: %w", c.displayRoot(), err)
		}
		pages++
	}

	logger.Debug("Listing complete", "root", c.displayRoot(), "pages", pages, "images", len(images))
	return images, nil
}

func (c *Client) appendImages(images []model.RemoteImage, entries []files.IsMetadata) []model.RemoteImage {
	for _, entry := range entries {
		file, ok := entry.(*files.FileMetadata)
		if !ok {
			continue
		}
		if !HasImageExtension(file.Name, c.extensions) {
			continue
		}
		path := file.PathLower
		if path == "" {
			// not mounted for the user; cannot be downloaded by path
			continue
		}
		images = append(images, model.RemoteImage{
			Path: path,
			Name: file.Name,
			Size: int64(file.Size),
		})
	}
	return images
}

// Fetch downloads a single file into memory
func (c *Client) Fetch(ctx context.Context, token *oauth2.Token, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, &FetchError{Path: path, Err: err}
	}

	fc := c.files(ctx, token)
	_, content, err := fc.Download(files.NewDownloadArg(path))
	if err != nil {
		return nil, &FetchError{Path: path, Err: err}
	}
	defer content.Close()

	data, err := io.ReadAll(content)
	if err != nil {
		return nil, &FetchError{Path: path, Err: err}
	}
	return data, nil
}

func (c *Client) displayRoot() string {
	if c.root == "" {
		return "/"
	}
	return c.root
}

func normalizeRoot(root string) string {
	root = strings.TrimSpace(root)
	root = strings.TrimRight(root, "/")
	if root == "" {
		return ""
	}
	if !strings.HasPrefix(root, "/") {
		root = "/" + root
	}
	return root
}

// Source joins an Authorizer and a Client into a complete image source
type Source struct {
	*Authorizer
	*Client
}

// NewSource creates the Dropbox image source
func NewSource(auth *Authorizer, client *Client) *Source {
	return &Source{Authorizer: auth, Client: client}
}
