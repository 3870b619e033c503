package cartrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/epiclounge/loungeweb/pkg/adapter/restful/gin/serdser"
	"github.com/epiclounge/loungeweb/pkg/core/model"
)

// emptyCart is the serialized response of a just-cleared cart.
var emptyCart = model.Cart{}

type rawCartID struct {
	CartID string `uri:"cid" binding:"required,uuid4"`
}

type rawItemID struct {
	CartID    string `uri:"cid" binding:"required,uuid4"`
	ProductID string `uri:"pid" binding:"required"`
}

// rawProduct mirrors the upstream product record; the storefront sends
// the full product it fetched from the menu, so the cart stays
// independent of any local catalog copy.
type rawProduct struct {
	ID          string `json:"id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	SKU         string `json:"sku"`
	Category    struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"category"`
	Pricing struct {
		USD float64 `json:"usd" binding:"gte=0"`
		LBP int64   `json:"lbp" binding:"gte=0"`
	} `json:"pricing"`
	Image string `json:"image"`
}

type rawQuantity struct {
	// Quantity is a pointer so zero, which removes the line item, can
	// be distinguished from an absent field.
	Quantity *int `json:"quantity" binding:"required"`
}

type rawCheckout struct {
	Name  string `json:"name"`
	Notes string `json:"notes"`
}

type addItemReq struct {
	CartID  uuid.UUID
	Product model.Product
}

type quantityReq struct {
	CartID    uuid.UUID
	ProductID string
	Quantity  int
}

type itemIDReq struct {
	CartID    uuid.UUID
	ProductID string
}

type checkoutReq struct {
	CartID uuid.UUID
	Name   string
	Notes  string
}

// toModel converts a bound product request into its domain model.
func (rp *rawProduct) toModel() model.Product {
	return model.Product{
		ID:          rp.ID,
		Name:        rp.Name,
		Description: rp.Description,
		SKU:         rp.SKU,
		Category: model.Category{
			ID:   rp.Category.ID,
			Name: rp.Category.Name,
		},
		Pricing: model.Pricing{
			USD: rp.Pricing.USD,
			LBP: rp.Pricing.LBP,
		},
		Image: rp.Image,
	}
}

// DserCartID deserializes the cart session id path parameter.
func (rs *resource) DserCartID(c *gin.Context) (uuid.UUID, bool) {
	req := &rawCartID{}
	if ok := serdser.BindURI(c, req); !ok {
		return uuid.Nil, false
	}
	cid, err := uuid.Parse(req.CartID)
	if err != nil {
		var errs map[string][]string
		serdser.AddErr(&errs, "cid", "Path param cid is not UUID.")
		c.JSON(http.StatusBadRequest, errs)
		return uuid.Nil, false
	}
	return cid, true
}

// DserAddItemReq deserializes the add-item request: the cart session
// id from the path and the product record from the JSON body.
func (rs *resource) DserAddItemReq(c *gin.Context) *addItemReq {
	cid, ok := rs.DserCartID(c)
	if !ok {
		return nil
	}
	req := &rawProduct{}
	if ok := serdser.Bind(c, req); !ok {
		return nil
	}
	return &addItemReq{CartID: cid, Product: req.toModel()}
}

// DserQuantityReq deserializes the quantity update request: the cart
// session id and product id from the path and the target quantity from
// the JSON body. Non-positive quantities are valid and remove the
// line item.
func (rs *resource) DserQuantityReq(c *gin.Context) *quantityReq {
	ids := rs.DserItemID(c)
	if ids == nil {
		return nil
	}
	req := &rawQuantity{}
	if ok := serdser.Bind(c, req); !ok {
		return nil
	}
	return &quantityReq{
		CartID:    ids.CartID,
		ProductID: ids.ProductID,
		Quantity:  *req.Quantity,
	}
}

// DserItemID deserializes the cart session id and product id path
// parameters.
func (rs *resource) DserItemID(c *gin.Context) *itemIDReq {
	req := &rawItemID{}
	if ok := serdser.BindURI(c, req); !ok {
		return nil
	}
	cid, err := uuid.Parse(req.CartID)
	if err != nil {
		var errs map[string][]string
		serdser.AddErr(&errs, "cid", "Path param cid is not UUID.")
		c.JSON(http.StatusBadRequest, errs)
		return nil
	}
	return &itemIDReq{CartID: cid, ProductID: req.ProductID}
}

// DserCheckoutReq deserializes the checkout request: the cart session
// id from the path and the optional customer name and notes from the
// JSON body. An absent body stands for an anonymous order without
// notes.
func (rs *resource) DserCheckoutReq(c *gin.Context) *checkoutReq {
	cid, ok := rs.DserCartID(c)
	if !ok {
		return nil
	}
	req := &rawCheckout{}
	if c.Request.Body != nil && c.Request.ContentLength > 0 {
		if ok := serdser.Bind(c, req); !ok {
			return nil
		}
	}
	return &checkoutReq{CartID: cid, Name: req.Name, Notes: req.Notes}
}

// cartResp carries a cart snapshot together with its derived numbers:
// the badge count and the dual-currency totals in both numeric and
// display-ready forms.
type cartResp struct {
	Items      []model.CartItem `json:"items"`
	TotalItems int              `json:"totalItems"`
	Totals     totalsResp       `json:"totals"`
}

type totalsResp struct {
	model.Totals
	USDText string `json:"usdText"`
	LBPText string `json:"lbpText"`
}

// SerCart serializes a cart snapshot, recomputing the totals from its
// line items.
func SerCart(cart model.Cart) cartResp {
	items := cart.Items
	if items == nil {
		items = []model.CartItem{}
	}
	totals := cart.TotalPrice()
	return cartResp{
		Items:      items,
		TotalItems: cart.TotalItems(),
		Totals: totalsResp{
			Totals:  totals,
			USDText: totals.FormatUSD(),
			LBPText: totals.FormatLBP(),
		},
	}
}
