package validation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Aidin1998/creatorhub/pkg/errors"
	"github.com/Aidin1998/creatorhub/pkg/models"
)

func price(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func fieldNames(t *testing.T, err error) []string {
	t.Helper()
	var e *errors.Error
	require.True(t, errors.As(err, &e))
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	return names
}

func TestValidateRegisterRequest(t *testing.T) {
	v := NewValidator(zap.NewNop())

	assert.NoError(t, v.ValidateStruct(&models.RegisterRequest{Name: "bob", WalletAddress: "0xABC"}))

	cases := []struct {
		name string
		req  models.RegisterRequest
		want []string
	}{
		{"missing name", models.RegisterRequest{WalletAddress: "0xABC"}, []string{"name"}},
		{"missing wallet", models.RegisterRequest{Name: "bob"}, []string{"walletAddress"}},
		{"missing both", models.RegisterRequest{}, []string{"name", "walletAddress"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.ValidateStruct(&tc.req)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.Invalid))
			assert.ElementsMatch(t, tc.want, fieldNames(t, err))
		})
	}
}

func TestValidateCreateAssetRequest(t *testing.T) {
	v := NewValidator(zap.NewNop())
	valid := models.CreateAssetRequest{CreatorID: 1, URL: "ipfs://x", Price: price("10"), Description: "d"}

	assert.NoError(t, v.ValidateStruct(&valid))

	zero := valid
	zero.Price = price("0")
	assert.NoError(t, v.ValidateStruct(&zero), "zero price is present, not missing")

	negative := valid
	negative.Price = price("-1")
	err := v.ValidateStruct(&negative)
	require.Error(t, err)
	assert.Equal(t, []string{"price"}, fieldNames(t, err))

	missing := models.CreateAssetRequest{}
	err = v.ValidateStruct(&missing)
	require.Error(t, err)
	assert.ElementsMatch(t, []string{"creatorId", "url", "price", "description"}, fieldNames(t, err))
}

func TestValidateUpdateProfileRequest(t *testing.T) {
	v := NewValidator(zap.NewNop())

	assert.NoError(t, v.ValidateStruct(&models.UpdateProfileRequest{Name: "alice"}))
	assert.NoError(t, v.ValidateStruct(&models.UpdateProfileRequest{WalletAddress: "0x1"}))

	err := v.ValidateStruct(&models.UpdateProfileRequest{})
	require.Error(t, err)
	assert.ElementsMatch(t, []string{"name", "walletAddress"}, fieldNames(t, err))
}

func TestSanitizeText(t *testing.T) {
	v := NewValidator(zap.NewNop())

	assert.Equal(t, "", v.SanitizeText(""))
	assert.Equal(t, "plain text", v.SanitizeText("plain text"))
	assert.Equal(t, "Tom's art & more", v.SanitizeText("Tom's art & more"))
	assert.Equal(t, "bold", v.SanitizeText("<b>bold</b><script>alert(1)</script>"))
}
