package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/target/salonbook-ui/internal/errors"
)

func TestUpdateSalonRequest_Validate(t *testing.T) {
	req := UpdateSalonRequest{Name: "  ", Email: " a@b.c "}
	err := req.Validate()
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Contains(t, apperrors.Fields(err), "name")
	assert.Equal(t, "a@b.c", req.Email)

	req.Name = " Glow "
	require.NoError(t, req.Validate())
	assert.Equal(t, "Glow", req.Name)
}

func TestAddressInput_Validate(t *testing.T) {
	in := AddressInput{Street: "", City: " "}
	fields := apperrors.Fields(in.Validate())
	assert.Contains(t, fields, "street")
	assert.Contains(t, fields, "city")

	in = AddressInput{Street: "1 Main St", City: "Springfield"}
	assert.NoError(t, in.Validate())
}

func TestAddress_Line(t *testing.T) {
	a := Address{Street: "1 Main St", City: "Springfield", Country: "US"}
	assert.Equal(t, "1 Main St, Springfield, US", a.Line())
}

func TestSocialLinkInput_Validate(t *testing.T) {
	in := SocialLinkInput{Platform: "Instagram"}
	fields := apperrors.Fields(in.Validate())
	assert.Equal(t, apperrors.FieldErrors{"url": "URL is required"}, fields)
}

func TestAlbumAndImageInput_Validate(t *testing.T) {
	album := AlbumInput{Title: " "}
	assert.True(t, apperrors.IsValidation(album.Validate()))

	img := ImageInput{Caption: "x"}
	assert.Contains(t, apperrors.Fields(img.Validate()), "url")

	assert.Equal(t, "", Album{}.Cover())
	assert.Equal(t, "u1", Album{Images: []Image{{URL: "u1"}, {URL: "u2"}}}.Cover())
}

func TestServiceInput_Validate(t *testing.T) {
	in := ServiceInput{Name: "Cut", Price: "abc", Duration: "x"}
	fields := apperrors.Fields(in.Validate())
	assert.Contains(t, fields, "price")
	assert.Contains(t, fields, "duration")

	in = ServiceInput{Name: "Cut", Price: "25.50", Duration: "45"}
	require.NoError(t, in.Validate())
	assert.Equal(t, map[string]string{
		"name": "Cut", "price": "25.50", "duration": "45", "description": "",
	}, in.Fields())

	assert.Equal(t, "$25.50", Service{Price: 25.5}.PriceLabel())
}

func TestFAQInput_Validate(t *testing.T) {
	in := FAQInput{Question: "Open Sundays?"}
	assert.Equal(t, apperrors.FieldErrors{"answer": "Answer is required"}, apperrors.Fields(in.Validate()))
}

func TestImageUpload_Empty(t *testing.T) {
	var u *ImageUpload
	assert.True(t, u.Empty())
	assert.False(t, (&ImageUpload{Data: []byte{1}}).Empty())
}
