package validation

import (
	"github.com/shopspring/decimal"

	"github.com/cahuala/ordersApi/pos-svc/internal/domain"
)

// Request shapes mirror the JSON bodies as received: every field is a
// pointer so "absent" can be told apart from "zero".

type CategoryRequest struct {
	Icon   *string `json:"icon"`
	Text   *string `json:"text"`
	Type   *string `json:"type"`
	Active *bool   `json:"active"`
}

func CreateCategory(req CategoryRequest) (domain.CategoryInput, error) {
	c := &checker{}
	in := domain.CategoryInput{
		Icon:   c.nonBlank("icon", req.Icon),
		Text:   c.nonBlank("text", req.Text),
		Type:   c.nonBlank("type", req.Type),
		Active: true,
	}
	if req.Active != nil {
		in.Active = *req.Active
	}
	return in, c.err()
}

func UpdateCategory(req CategoryRequest) (domain.CategoryPatch, error) {
	c := &checker{}
	patch := domain.CategoryPatch{
		Icon:   c.optionalNonBlank("icon", req.Icon),
		Text:   c.optionalNonBlank("text", req.Text),
		Type:   c.optionalNonBlank("type", req.Type),
		Active: req.Active,
	}
	return patch, c.err()
}

type FoodRequest struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Image       *string          `json:"image"`
	Type        *string          `json:"type"`
}

const (
	msgFoodTitle       = "Nome deve ter no mínimo 3 caracteres"
	msgFoodDescription = "Descrição deve ter no mínimo 10 caracteres"
	msgPricePositive   = "Valor deve ser positivo"
)

func CreateFood(req FoodRequest) (domain.FoodInput, error) {
	c := &checker{}
	in := domain.FoodInput{
		Title:       c.minLength("title", req.Title, 3, msgFoodTitle),
		Description: c.minLength("description", req.Description, 10, msgFoodDescription),
		Price:       c.positiveDecimal("price", req.Price, msgPricePositive),
		Type:        c.nonBlank("type", req.Type),
	}
	if req.Image != nil {
		in.Image = *req.Image
	}
	return in, c.err()
}

func UpdateFood(req FoodRequest) (domain.FoodPatch, error) {
	c := &checker{}
	patch := domain.FoodPatch{
		Title:       c.optionalMinLength("title", req.Title, 3, msgFoodTitle),
		Description: c.optionalMinLength("description", req.Description, 10, msgFoodDescription),
		Price:       c.optionalPositiveDecimal("price", req.Price, msgPricePositive),
		Image:       req.Image,
		Type:        c.optionalNonBlank("type", req.Type),
	}
	return patch, c.err()
}

// TextRequest serves sizes and addons. Addons historically sent "name".
type TextRequest struct {
	Text *string `json:"text"`
	Name *string `json:"name"`
}

func (r TextRequest) value() *string {
	if r.Text != nil {
		return r.Text
	}
	return r.Name
}

func CreateSize(req TextRequest) (domain.SizeInput, error) {
	c := &checker{}
	in := domain.SizeInput{Text: c.nonBlank("text", req.value())}
	return in, c.err()
}

func UpdateSize(req TextRequest) (domain.SizePatch, error) {
	c := &checker{}
	var patch domain.SizePatch
	if v := req.value(); v != nil {
		text := c.nonBlank("text", v)
		patch.Text = &text
	}
	return patch, c.err()
}

func CreateAddon(req TextRequest) (domain.AddonInput, error) {
	c := &checker{}
	in := domain.AddonInput{Text: c.nonBlank("text", req.value())}
	return in, c.err()
}

func UpdateAddon(req TextRequest) (domain.AddonPatch, error) {
	c := &checker{}
	var patch domain.AddonPatch
	if v := req.value(); v != nil {
		text := c.nonBlank("text", v)
		patch.Text = &text
	}
	return patch, c.err()
}

type SizeFoodRequest struct {
	SizeID *string          `json:"sizeId"`
	FoodID *string          `json:"foodId"`
	Price  *decimal.Decimal `json:"price"`
}

const (
	msgSizeID  = "O tamanho é obrigatório"
	msgAddonID = "O extra é obrigatório"
	msgFoodRef = "A Alimentação/Bebida é obrigatório"
)

func CreateSizeFood(req SizeFoodRequest) (domain.SizeFoodInput, error) {
	c := &checker{}
	in := domain.SizeFoodInput{
		SizeID: c.id("sizeId", req.SizeID, msgSizeID),
		FoodID: c.id("foodId", req.FoodID, msgFoodRef),
		Price:  c.positiveDecimal("price", req.Price, msgPricePositive),
	}
	return in, c.err()
}

func UpdateSizeFood(req SizeFoodRequest) (domain.SizeFoodPatch, error) {
	c := &checker{}
	patch := domain.SizeFoodPatch{
		SizeID: c.optionalID("sizeId", req.SizeID, msgSizeID),
		FoodID: c.optionalID("foodId", req.FoodID, msgFoodRef),
		Price:  c.optionalPositiveDecimal("price", req.Price, msgPricePositive),
	}
	return patch, c.err()
}

type AddonFoodRequest struct {
	AddonID *string          `json:"addonId"`
	FoodID  *string          `json:"foodId"`
	Price   *decimal.Decimal `json:"price"`
}

func CreateAddonFood(req AddonFoodRequest) (domain.AddonFoodInput, error) {
	c := &checker{}
	in := domain.AddonFoodInput{
		AddonID: c.id("addonId", req.AddonID, msgAddonID),
		FoodID:  c.id("foodId", req.FoodID, msgFoodRef),
		Price:   c.positiveDecimal("price", req.Price, msgPricePositive),
	}
	return in, c.err()
}

func UpdateAddonFood(req AddonFoodRequest) (domain.AddonFoodPatch, error) {
	c := &checker{}
	patch := domain.AddonFoodPatch{
		AddonID: c.optionalID("addonId", req.AddonID, msgAddonID),
		FoodID:  c.optionalID("foodId", req.FoodID, msgFoodRef),
		Price:   c.optionalPositiveDecimal("price", req.Price, msgPricePositive),
	}
	return patch, c.err()
}

type TableRequest struct {
	Name     *string `json:"name"`
	TotalPax *int    `json:"totalPax"`
}

const (
	msgTableName = "O Nome deve ter no mínimo 3 caracteres"
	msgTotalPax  = "O número de pessoas deve ser maior que 0"
)

func CreateTable(req TableRequest) (domain.TableInput, error) {
	c := &checker{}
	in := domain.TableInput{
		Name:     c.minLength("name", req.Name, 3, msgTableName),
		TotalPax: c.positiveInt("totalPax", req.TotalPax, msgTotalPax),
	}
	return in, c.err()
}

func UpdateTable(req TableRequest) (domain.TablePatch, error) {
	c := &checker{}
	patch := domain.TablePatch{
		Name:     c.optionalMinLength("name", req.Name, 3, msgTableName),
		TotalPax: c.optionalPositiveInt("totalPax", req.TotalPax, msgTotalPax),
	}
	return patch, c.err()
}

type TableSessionRequest struct {
	TableNo *string          `json:"tableNo"`
	Pax     *int             `json:"pax"`
	Status  *string          `json:"status"`
	Total   *decimal.Decimal `json:"total"`
	Version *int             `json:"version"`
}

const (
	msgTableNo       = "A mesa deve ser um UUID válido"
	msgPax           = "O Lugar Ocupado deve ser um número inteiro positivo"
	msgStatus        = "Status deve ser 'unpaid' ou 'paid'"
	msgStatusPatch   = "Status só pode ser alterado pelas rotas open e close"
	msgTotalNegative = "O total não pode ser negativo"
)

func CreateTableSession(req TableSessionRequest) (domain.TableSessionInput, error) {
	c := &checker{}
	in := domain.TableSessionInput{
		TableNo: c.id("tableNo", req.TableNo, msgTableNo),
		Pax:     c.positiveInt("pax", req.Pax, msgPax),
		Status:  domain.SessionUnpaid,
		Total:   decimal.Zero,
	}
	if req.Status != nil {
		in.Status = domain.SessionStatus(*req.Status)
		if !in.Status.Valid() {
			c.fail("status", msgStatus)
		}
	}
	if req.Total != nil {
		c.total(*req.Total)
		in.Total = *req.Total
	}
	return in, c.err()
}

func UpdateTableSession(req TableSessionRequest) (domain.TableSessionPatch, error) {
	c := &checker{}
	patch := domain.TableSessionPatch{
		TableNo: c.optionalID("tableNo", req.TableNo, msgTableNo),
		Pax:     c.optionalPositiveInt("pax", req.Pax, msgPax),
		Total:   req.Total,
		Version: req.Version,
	}
	if req.Status != nil {
		c.fail("status", msgStatusPatch)
	}
	if req.Total != nil {
		c.total(*req.Total)
	}
	return patch, c.err()
}

func (c *checker) total(value decimal.Decimal) {
	if value.IsNegative() {
		c.fail("total", msgTotalNegative)
		return
	}
	c.amount("total", value)
}

type OrderRequest struct {
	FoodID         *string          `json:"foodId"`
	Quantity       *int             `json:"quantity"`
	Price          *decimal.Decimal `json:"price"`
	TableSessionID *string          `json:"tableSessionId"`
	SizeID         *string          `json:"sizeId"`
	AddonIDs       []string         `json:"addonIds"`
}

const (
	msgOrderFood    = "O ID do alimento deve ser um UUID válido"
	msgQuantity     = "A quantidade deve ser maior que 0"
	msgOrderPrice   = "O preço deve ser maior que 0"
	msgOrderSession = "O ID da mesa deve ser um UUID válido"
	msgOrderSize    = "O ID do tamanho deve ser um UUID válido"
	msgOrderAddon   = "O ID do extra deve ser um UUID válido"
)

func CreateOrder(req OrderRequest) (domain.OrderInput, error) {
	c := &checker{}
	in := domain.OrderInput{
		FoodID:         c.id("foodId", req.FoodID, msgOrderFood),
		Quantity:       c.positiveInt("quantity", req.Quantity, msgQuantity),
		Price:          c.optionalPositiveDecimal("price", req.Price, msgOrderPrice),
		TableSessionID: c.id("tableSessionId", req.TableSessionID, msgOrderSession),
		SizeID:         c.optionalID("sizeId", req.SizeID, msgOrderSize),
		AddonIDs:       c.idList("addonIds", req.AddonIDs, msgOrderAddon),
	}
	return in, c.err()
}

func UpdateOrder(req OrderRequest) (domain.OrderPatch, error) {
	c := &checker{}
	patch := domain.OrderPatch{
		FoodID:         c.optionalID("foodId", req.FoodID, msgOrderFood),
		Quantity:       c.optionalPositiveInt("quantity", req.Quantity, msgQuantity),
		Price:          c.optionalPositiveDecimal("price", req.Price, msgOrderPrice),
		TableSessionID: c.optionalID("tableSessionId", req.TableSessionID, msgOrderSession),
	}
	return patch, c.err()
}

type PriceQuery struct {
	SizeID   string
	AddonIDs []string
}

func Price(foodID string, query PriceQuery) (domain.PriceRequest, error) {
	c := &checker{}
	req := domain.PriceRequest{
		FoodID:   c.id("id", &foodID, "Identificador deve ser um UUID válido"),
		AddonIDs: c.idList("addonId", query.AddonIDs, msgOrderAddon),
	}
	if query.SizeID != "" {
		req.SizeID = c.optionalID("sizeId", &query.SizeID, msgOrderSize)
	}
	return req, c.err()
}
