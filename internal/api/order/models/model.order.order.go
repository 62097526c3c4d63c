package ordermodels

import (
	"strings"

	"panier_commerce/internal/logger"
	"panier_commerce/internal/utility"
)

// Các trạng thái chuẩn của đơn hàng (nhãn tiếng Pháp hiển thị cho người vận hành)
const (
	StatusPending   = "En attente"
	StatusReady     = "Prêt"
	StatusDelivered = "Livré"
)

// Order là model chuẩn hóa của một đơn hàng đọc từ webhook.
//
// Etat giữ nguyên giá trị thô từ webhook (persist verbatim); EtatAffiche là
// nhãn chuẩn dùng để hiển thị và filter - giá trị lạ hiển thị là "En attente".
type Order struct {
	ID                string  `json:"id" bson:"id"`
	Prenom            string  `json:"prenom" bson:"prenom"`
	Nom               string  `json:"nom" bson:"nom"`
	Email             string  `json:"email" bson:"email"`
	Telephone         string  `json:"telephone" bson:"telephone"`
	TelephoneAffiche  string  `json:"telephone_affiche" bson:"telephone_affiche"`
	DateRecuperation  string  `json:"date_recuperation" bson:"date_recuperation"`
	DateCreation      string  `json:"date_creation" bson:"date_creation"`
	NombrePaniers     int64   `json:"nombre_paniers" bson:"nombre_paniers"`
	Etat              string  `json:"etat" bson:"etat"`
	EtatAffiche       string  `json:"etat_affiche" bson:"etat_affiche"`
	CompositionID     *string `json:"composition_id" bson:"composition_id"`
}

// Bảng alias cho từng field logic - thứ tự là thứ tự ưu tiên, giá trị đầu tiên
// tồn tại và khác nil được lấy. Khai báo tập trung để review như bảng dữ liệu.
var (
	aliasPrenom        = []string{"Prenom", "prenom"}
	aliasNom           = []string{"Nom", "nom"}
	aliasEmail         = []string{"Email", "email"}
	aliasTelephone     = []string{"Telephone", "telephone"}
	aliasDateRecup     = []string{"Date_Recuperation", "date_recuperation", "DateRecuperation", "dateRecuperation"}
	aliasDateCreation  = []string{"Date_Creation", "date_creation", "dateCreation", "createdAt"}
	aliasNombrePaniers = []string{"Nombre_Paniers", "nombrePaniers", "nombre_paniers"}
	aliasEtat          = []string{"etat", "Etat", "status"}
	aliasCompositionID = []string{"composition_id", "compositionId"}
	aliasID            = []string{"id", "ID", "Id"}
)

// BuildOrder chuyển một record thô từ normalizer thành Order chuẩn.
//
// Record không có cả prenom lẫn nom là record hỏng: trả về ok=false và record
// bị loại khỏi working set hoàn toàn (silent drop, chỉ log debug - không phải lỗi).
func BuildOrder(record map[string]interface{}) (Order, bool) {
	prenom := strings.TrimSpace(utility.ResolveString(record, aliasPrenom...))
	nom := strings.TrimSpace(utility.ResolveString(record, aliasNom...))
	if prenom == "" && nom == "" {
		logger.GetAppLogger().WithField("record_keys", recordKeys(record)).
			Debug("📦 [ORDER] Record hỏng (thiếu cả prenom lẫn nom), loại khỏi working set")
		return Order{}, false
	}

	order := Order{
		ID:           utility.ResolveString(record, aliasID...),
		Prenom:       prenom,
		Nom:          nom,
		Email:        strings.TrimSpace(utility.ResolveString(record, aliasEmail...)),
		Telephone:    strings.TrimSpace(utility.ResolveString(record, aliasTelephone...)),
		DateCreation: strings.TrimSpace(utility.ResolveString(record, aliasDateCreation...)),
		Etat:         strings.TrimSpace(utility.ResolveString(record, aliasEtat...)),
	}

	order.TelephoneAffiche = utility.FormatTelephone(order.Telephone)
	order.EtatAffiche = CanonicalStatus(order.Etat)

	// Ngày lấy hàng: chuẩn về DD/MM/YYYY nếu parse được, không thì giữ nguyên
	// (aggregator sẽ coi tháng của record là "không xác định")
	rawDate := strings.TrimSpace(utility.ResolveString(record, aliasDateRecup...))
	if t, ok := utility.ParseDateFR(rawDate); ok {
		order.DateRecuperation = utility.FormatDateFR(t)
	} else {
		order.DateRecuperation = rawDate
	}

	// Số panier mặc định 1 khi thiếu hoặc không parse được
	if n, ok := utility.ResolveInt64(record, aliasNombrePaniers...); ok && n > 0 {
		order.NombrePaniers = n
	} else {
		order.NombrePaniers = 1
	}

	// composition_id giữ verbatim nếu có; thiếu thì là nil, KHÔNG BAO GIỜ là ""
	// để so sánh "in use" phía composition luôn well-defined
	if value, ok := utility.ResolveValue(record, aliasCompositionID...); ok {
		if s, err := utility.ConvertString(value); err == nil && s != "" {
			order.CompositionID = &s
		}
	}

	return order, true
}

// BuildOrders chạy BuildOrder trên cả danh sách record, loại record hỏng
func BuildOrders(records []map[string]interface{}) []Order {
	orders := make([]Order, 0, len(records))
	for _, record := range records {
		if order, ok := BuildOrder(record); ok {
			orders = append(orders, order)
		}
	}
	return orders
}

// CanonicalStatus chuẩn hóa trạng thái thô về một trong ba nhãn chuẩn.
// So sánh không phân biệt hoa thường và dấu; giá trị lạ trả về "En attente"
// (chỉ cho hiển thị - giá trị thô vẫn được persist verbatim).
func CanonicalStatus(raw string) string {
	switch normalizeStatusKey(raw) {
	case "pret", "ready":
		return StatusReady
	case "livre", "delivered":
		return StatusDelivered
	default:
		return StatusPending
	}
}

var statusAccents = strings.NewReplacer("é", "e", "è", "e", "ê", "e")

func normalizeStatusKey(raw string) string {
	return statusAccents.Replace(strings.ToLower(strings.TrimSpace(raw)))
}

func recordKeys(record map[string]interface{}) []string {
	keys := make([]string, 0, len(record))
	for k := range record {
		keys = append(keys, k)
	}
	return keys
}
