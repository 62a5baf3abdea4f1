/*
Copyright © 2025 Ovrinda
SPDX-License-Identifier: Apache-2.0
*/

package oci

import (
	"fmt"

	"github.com/distribution/reference"

	apperrors "github.com/ovrinda/shipctl/pkg/errors"
)

// ImageReference is a resolved name:tag identifier for a packaged container
// image. Constructed once per workflow invocation, never mutated.
type ImageReference struct {
	// Name is the image name, typically the application name. May include
	// a registry or repository prefix (e.g. "registry.local/team/app").
	Name string
	// Tag is the image tag (e.g. "v1", "latest").
	Tag string
}

// NewImageReference builds and validates an ImageReference from an
// application name and tag. Validation uses the distribution reference
// grammar, so anything accepted here is a legal argument to the container
// engine and a legal value inside a manifest.
func NewImageReference(name, tag string) (ImageReference, error) {
	if name == "" {
		return ImageReference{}, apperrors.New(apperrors.ErrCodeInvalidRequest, "image name is required")
	}
	if tag == "" {
		return ImageReference{}, apperrors.New(apperrors.ErrCodeInvalidRequest, "image tag is required")
	}

	candidate := fmt.Sprintf("%s:%s", name, tag)
	ref, err := reference.ParseNormalizedNamed(candidate)
	if err != nil {
		return ImageReference{}, apperrors.WrapWithContext(apperrors.ErrCodeInvalidRequest,
			"invalid image reference", err, map[string]any{
				"name": name,
				"tag":  tag,
			})
	}
	if _, ok := ref.(reference.Tagged); !ok {
		return ImageReference{}, apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			"image reference has no tag", map[string]any{"reference": candidate})
	}

	return ImageReference{Name: name, Tag: tag}, nil
}

// String returns the familiar name:tag form, exactly as it is passed to the
// container engine and substituted into manifests.
func (r ImageReference) String() string {
	return fmt.Sprintf("%s:%s", r.Name, r.Tag)
}
