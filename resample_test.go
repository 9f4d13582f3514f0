package appicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter_Parse(t *testing.T) {
	assert := assert.New(t)

	f, err := ParseFilter("")
	assert.NoError(err)
	assert.Equal(Lanczos, f)

	f, err = ParseFilter("CatmullRom")
	assert.NoError(err)
	assert.Equal(CatmullRom, f)

	f, err = ParseFilter("box")
	assert.NoError(err)
	assert.Equal(Box, f)

	_, err = ParseFilter("nearest")
	assert.ErrorIs(err, ErrUnknownFilter)
}

func TestFilter_Resample(t *testing.T) {
	img := referenceImage(ReferenceSize)

	for _, f := range Filters {
		t.Run(string(f), func(t *testing.T) {
			for _, px := range []int{1, 40, 87, 180} {
				res, err := f.Resample(img, px)
				require.NoError(t, err)
				assert.Equal(t, px, res.Bounds().Dx())
				assert.Equal(t, px, res.Bounds().Dy())
				assert.Equal(t, uint8(0xff), res.NRGBAAt(px/2, px/2).A)
			}
		})
	}
}

func TestFilter_ResampleKeepsGradientOrder(t *testing.T) {
	img := referenceImage(ReferenceSize)

	for _, f := range Filters {
		res, err := f.Resample(img, 60)
		require.NoError(t, err)

		top := res.NRGBAAt(30, 2)
		bottom := res.NRGBAAt(30, 57)
		assert.Less(t, top.R, bottom.R, string(f))
		assert.Less(t, top.G, bottom.G, string(f))
	}
}

func TestFilter_ResampleInvalid(t *testing.T) {
	img := referenceImage(64)

	_, err := Lanczos.Resample(img, 0)
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = Filter("nearest").Resample(img, 32)
	assert.ErrorIs(t, err, ErrUnknownFilter)
}
