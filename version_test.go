// SPDX-License-Identifier: GPL-3.0-or-later

package dnscookie

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	t.Run("Version1", func(t *testing.T) {
		v, err := ParseVersion(1)
		require.NoError(t, err)
		require.Equal(t, Version1, v)
		require.Equal(t, "1", v.String())
	})

	for _, b := range []uint8{0, 2, 255} {
		t.Run("Unknown", func(t *testing.T) {
			_, err := ParseVersion(b)
			require.ErrorIs(t, err, ErrUnknownVersion)
			var verr *UnknownVersionError
			require.ErrorAs(t, err, &verr)
			require.Equal(t, b, verr.Version)
		})
	}
}

func TestParseAlgorithm(t *testing.T) {
	t.Run("SipHash24", func(t *testing.T) {
		a, err := ParseAlgorithm(4)
		require.NoError(t, err)
		require.Equal(t, AlgorithmSipHash24, a)
		require.Equal(t, "SipHash-2-4", a.String())
	})

	unsupported := []struct {
		name string
		code uint8
		want string
	}{
		{"FNV", 1, "FNV"},
		{"HMACSHA256", 2, "HMAC-SHA-256-64"},
		{"AES", 3, "AES"},
	}
	for _, tt := range unsupported {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAlgorithm(tt.code)
			require.ErrorIs(t, err, ErrUnsupportedAlgorithm)
			require.NotErrorIs(t, err, ErrUnknownAlgorithm)
			var aerr *UnsupportedAlgorithmError
			require.ErrorAs(t, err, &aerr)
			require.Equal(t, tt.want, aerr.Name)
			require.Equal(t, tt.want, Algorithm(tt.code).String())
		})
	}

	for _, b := range []uint8{0, 5, 7, 255} {
		t.Run("Unknown", func(t *testing.T) {
			_, err := ParseAlgorithm(b)
			require.ErrorIs(t, err, ErrUnknownAlgorithm)
			require.NotErrorIs(t, err, ErrUnsupportedAlgorithm)
			var aerr *UnknownAlgorithmError
			require.ErrorAs(t, err, &aerr)
			require.Equal(t, b, aerr.Algorithm)
		})
	}

	require.Equal(t, "Algorithm(7)", Algorithm(7).String())
}
