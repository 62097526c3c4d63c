package global

import (
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	// telephoneFrRegex: số di động Pháp, bắt đầu 06 hoặc 07, đủ 10 chữ số
	telephoneFrRegex = regexp.MustCompile(`^0[67]\d{8}$`)

	// compSlugRegex: identifier của composition, chữ thường/số/gạch ngang, prefix comp-
	compSlugRegex = regexp.MustCompile(`^comp-[a-z0-9-]+$`)

	// nomFrRegex: tên người Pháp, chữ cái (kể cả dấu), khoảng trắng, gạch ngang, dấu nháy
	nomFrRegex = regexp.MustCompile(`^[a-zA-ZàâäéèêëïîôöùûüçÀÂÄÉÈÊËÏÎÔÖÙÛÜÇ' -]+$`)

	// dateFrRegex: định dạng DD/MM/YYYY
	dateFrRegex = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)
)

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	Validate = validator.New()

	_ = Validate.RegisterValidation("telephone_fr", validateTelephoneFr)
	_ = Validate.RegisterValidation("nom_fr", validateNomFr)
	_ = Validate.RegisterValidation("date_fr", validateDateFr)
	_ = Validate.RegisterValidation("comp_slug", validateCompSlug)
	_ = Validate.RegisterValidation("no_xss", validateNoXSS)
}

// validateTelephoneFr kiểm tra số di động Pháp (06/07 + 8 chữ số).
// Khoảng trắng trong số được bỏ qua trước khi kiểm tra (người dùng hay nhập "06 12 34 56 78").
func validateTelephoneFr(fl validator.FieldLevel) bool {
	value := strings.Join(strings.Fields(fl.Field().String()), "")
	return telephoneFrRegex.MatchString(value)
}

// validateNomFr kiểm tra tên (prenom/nom): chỉ chữ cái có dấu, khoảng trắng, gạch ngang, nháy đơn
func validateNomFr(fl validator.FieldLevel) bool {
	value := strings.TrimSpace(fl.Field().String())
	if value == "" {
		return false
	}
	return nomFrRegex.MatchString(value)
}

// validateDateFr kiểm tra chuỗi DD/MM/YYYY là ngày lịch hợp lệ.
// Parse positional để tránh nhầm ngày/tháng.
func validateDateFr(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if !dateFrRegex.MatchString(value) {
		return false
	}
	_, err := time.Parse("02/01/2006", value)
	return err == nil
}

// validateCompSlug kiểm tra identifier composition: ^comp-[a-z0-9-]+$
func validateCompSlug(fl validator.FieldLevel) bool {
	return compSlugRegex.MatchString(fl.Field().String())
}

// validateNoXSS kiểm tra XSS
func validateNoXSS(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	dangerousPatterns := []string{
		"<script",
		"javascript:",
		"onerror=",
		"onload=",
		"onclick=",
		"eval(",
		"document.cookie",
		"document.write",
		"innerHTML",
		"<iframe",
		"<object",
		"<embed",
	}

	value = strings.ToLower(value)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(value, pattern) {
			return false
		}
	}
	return true
}
