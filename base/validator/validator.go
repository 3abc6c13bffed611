package validator

import (
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// TagWallet accepts a hex address or an ens name
const TagWallet = "wallet"

var ensNameRegex = regexp.MustCompile(`^([a-z0-9-]+\.)+eth$`)

// IsValidAddress returns is an address valid or not
func IsValidAddress(address string) bool {
	checksum := common.HexToAddress(address).Hex()
	return strings.ToLower(checksum) == strings.ToLower(address)
}

func IsEnsName(name string) bool {
	return ensNameRegex.MatchString(strings.ToLower(name))
}

func isWallet(fl validator.FieldLevel) bool {
	s := strings.TrimSpace(fl.Field().String())
	return IsValidAddress(s) || IsEnsName(s)
}

// NewCustomValidator registers the wallet tag on v and wraps it for echo
func NewCustomValidator(v *validator.Validate) echo.Validator {
	if err := v.RegisterValidation(TagWallet, isWallet); err != nil {
		panic(err)
	}
	return &CustomValidator{v}
}

type CustomValidator struct {
	validator *validator.Validate
}

func (v *CustomValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}
