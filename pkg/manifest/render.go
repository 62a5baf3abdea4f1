/*
Copyright © 2025 Ovrinda
SPDX-License-Identifier: Apache-2.0
*/

package manifest

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	apperrors "github.com/ovrinda/shipctl/pkg/errors"
)

// Token is the placeholder replaced with the image reference. The rendered
// output is byte-identical to the template except for this substitution.
const Token = "${IMAGE}"

// Rendered is a manifest written to a temporary path for the duration of a
// single workflow invocation. Callers must Remove it when done, on both
// success and failure paths.
type Rendered struct {
	// Path is the temporary file holding the rendered manifest.
	Path string
	// Image is the reference substituted into the template.
	Image string
	// Template is the source template path.
	Template string
}

// Remove deletes the rendered manifest file. Safe to call more than once.
func (r *Rendered) Remove() error {
	if r == nil || r.Path == "" {
		return nil
	}
	if err := os.Remove(r.Path); err != nil && !os.IsNotExist(err) {
		return err
	}
	r.Path = ""
	return nil
}

// Renderer substitutes the image token in manifest templates.
type Renderer struct {
	token  string
	tmpDir string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithToken overrides the placeholder token.
func WithToken(token string) Option {
	return func(r *Renderer) {
		r.token = token
	}
}

// WithTempDir overrides the directory rendered manifests are written to.
func WithTempDir(dir string) Option {
	return func(r *Renderer) {
		r.tmpDir = dir
	}
}

// New creates a Renderer with the default token and temp directory.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		token:  Token,
		tmpDir: os.TempDir(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render reads the template, replaces every occurrence of the token with the
// image reference, and writes the result to a fresh uniquely named file.
// A template without any token occurrence is an error, not a pass-through:
// applying a manifest that silently ignored the requested image is exactly
// the failure mode this guards against.
func (r *Renderer) Render(templatePath, image string) (*Rendered, error) {
	data, err := os.ReadFile(templatePath)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeTemplate,
			fmt.Sprintf("failed to read manifest template %s", templatePath), err)
	}

	if !bytes.Contains(data, []byte(r.token)) {
		return nil, apperrors.NewWithContext(apperrors.ErrCodeTemplate,
			fmt.Sprintf("placeholder %s not found in template", r.token),
			map[string]any{"template": templatePath})
	}

	rendered := bytes.ReplaceAll(data, []byte(r.token), []byte(image))

	// Unique path per invocation so concurrent runs never collide.
	base := strings.TrimSuffix(filepath.Base(templatePath), filepath.Ext(templatePath))
	path := filepath.Join(r.tmpDir, fmt.Sprintf("%s-%s.yaml", base, uuid.NewString()))

	if err := os.WriteFile(path, rendered, 0o600); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeTemplate,
			"failed to write rendered manifest", err)
	}

	slog.Debug("rendered manifest",
		"template", templatePath,
		"image", image,
		"path", path)

	return &Rendered{
		Path:     path,
		Image:    image,
		Template: templatePath,
	}, nil
}
