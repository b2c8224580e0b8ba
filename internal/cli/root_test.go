package cli

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/gallery-viewer/internal/config"
)

func execute(t *testing.T, args ...string) (config.Options, error) {
	t.Helper()

	var got config.Options
	cmd := NewRootCommand(config.NewViper(), func(_ *cobra.Command, opts config.Options) error {
		got = opts
		return nil
	})
	cmd.SetArgs(args)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	return got, err
}

func TestRootCommand_NoFlags(t *testing.T) {
	opts, err := execute(t)
	require.NoError(t, err)

	assert.Equal(t, config.Options{}, opts)
}

func TestRootCommand_Flags(t *testing.T) {
	opts, err := execute(t,
		"-v",
		"--windowed",
		"--console-auth",
		"--client-id", "my-key",
		"--interval", "12s",
		"--root", "/Photos",
		"--extensions", "png,.webp",
		"--language", "ru",
	)
	require.NoError(t, err)

	assert.True(t, opts.Verbose)
	assert.True(t, opts.Windowed)
	assert.True(t, opts.ConsoleAuth)
	assert.Equal(t, "my-key", opts.ClientID)
	assert.Equal(t, 12*time.Second, opts.Interval)
	assert.Equal(t, "/Photos", opts.Root)
	assert.Equal(t, "png,.webp", opts.Extensions)
	assert.Equal(t, "ru", opts.Language)
}

func TestRootCommand_EnvFallback(t *testing.T) {
	t.Setenv("GALLERY_INTERVAL", "7s")
	t.Setenv("GALLERY_ROOT", "/Env")

	opts, err := execute(t, "--root", "/Flag")
	require.NoError(t, err)

	assert.Equal(t, 7*time.Second, opts.Interval)
	assert.Equal(t, "/Flag", opts.Root, "flag should win over environment")
}

func TestRootCommand_RejectsArgs(t *testing.T) {
	_, err := execute(t, "extra")
	assert.Error(t, err)
}

func TestRootCommand_Version(t *testing.T) {
	SetVersionInfo("1.2.3", "abc123", "today")
	t.Cleanup(func() { SetVersionInfo("dev", "unknown", "unknown") })

	out := &bytes.Buffer{}
	called := false
	cmd := NewRootCommand(config.NewViper(), func(*cobra.Command, config.Options) error {
		called = true
		return nil
	})
	cmd.SetArgs([]string{"--version"})
	cmd.SetOut(out)

	require.NoError(t, cmd.Execute())
	assert.False(t, called)
	assert.Contains(t, out.String(), "1.2.3 (commit: abc123, built: today)")
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.env")
	second := filepath.Join(dir, "second.env")
	require.NoError(t, os.WriteFile(second, []byte("GALLERY_TEST_DOTENV=second\n"), 0o600))

	t.Setenv("GALLERY_TEST_DOTENV", "")
	require.NoError(t, os.Unsetenv("GALLERY_TEST_DOTENV"))

	loaded := LoadDotEnv([]string{first, second})

	assert.Equal(t, second, loaded)
	assert.Equal(t, "second", os.Getenv("GALLERY_TEST_DOTENV"))
}

func TestLoadDotEnv_NothingFound(t *testing.T) {
	assert.Empty(t, LoadDotEnv([]string{filepath.Join(t.TempDir(), "missing.env")}))
}

func TestDotEnvPaths(t *testing.T) {
	paths := DotEnvPaths()

	require.NotEmpty(t, paths)
	assert.Equal(t, ".env", paths[0])
	for _, p := range paths[1:] {
		assert.Equal(t, filepath.Join(AppName, ".env"), filepath.Join(filepath.Base(filepath.Dir(p)), ".env"))
	}
}

func TestDecoder(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 40, 20))
	src.Set(0, 0, color.White)
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))

	img, err := decoder(10)(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, 10, img.Bounds().Dx())

	_, err = decoder(0)([]byte("not an image"))
	assert.ErrorContains(t, err, "decode image")
}

func TestBrowserOpener(t *testing.T) {
	a := test.NewApp()
	t.Cleanup(a.Quit)
	open := browserOpener(a)

	assert.NoError(t, open("https://www.dropbox.com/oauth2/authorize?client_id=x"))

	for _, link := range []string{"file:///etc/passwd", "javascript:alert(1)", "://bad"} {
		assert.Error(t, open(link), link)
	}
}
