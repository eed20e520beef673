package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-admin/internal/application/dto"
	"github.com/jhoicas/inventory-admin/internal/application/inventory"
)

// SupplierHandler maneja las peticiones HTTP de proveedores.
type SupplierHandler struct {
	svc *inventory.InventoryService
}

func NewSupplierHandler(svc *inventory.InventoryService) *SupplierHandler {
	return &SupplierHandler{svc: svc}
}

// List godoc
// @Summary      Listar proveedores
// @Tags         suppliers
// @Security     Bearer
// @Produce      json
// @Param        q  query  string  false  "Busca en nombre, email o contacto"
// @Success      200  {object}  dto.ListResponse[dto.SupplierResponse]
// @Router       /api/suppliers [get]
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	page, ok, err := parsePage(c)
	if !ok {
		return err
	}
	suppliers := h.svc.SearchSuppliers(c.Query("q"))
	return c.JSON(dto.Paginate(dto.NewSupplierResponses(suppliers), page))
}

func (h *SupplierHandler) GetByID(c *fiber.Ctx) error {
	s, ok := h.svc.GetSupplier(c.Params("id"))
	if !ok {
		return notFound(c, "proveedor")
	}
	return c.JSON(dto.NewSupplierResponse(s))
}

// Create godoc
// @Summary      Crear proveedor
// @Tags         suppliers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSupplierRequest  true  "Datos del proveedor"
// @Success      201   {object}  dto.SupplierResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/suppliers [post]
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSupplierRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	s := h.svc.AddSupplier(in.ToEntity())
	return c.Status(fiber.StatusCreated).JSON(dto.NewSupplierResponse(s))
}

func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSupplierRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	s, ok := h.svc.UpdateSupplier(c.Params("id"), in.ToPatch())
	if !ok {
		return notFound(c, "proveedor")
	}
	return c.JSON(dto.NewSupplierResponse(s))
}

func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	if !h.svc.DeleteSupplier(c.Params("id")) {
		return notFound(c, "proveedor")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CustomerHandler maneja las peticiones HTTP de clientes.
type CustomerHandler struct {
	svc *inventory.InventoryService
}

func NewCustomerHandler(svc *inventory.InventoryService) *CustomerHandler {
	return &CustomerHandler{svc: svc}
}

// List godoc
// @Summary      Listar clientes
// @Tags         customers
// @Security     Bearer
// @Produce      json
// @Param        q  query  string  false  "Busca en nombre o email"
// @Success      200  {object}  dto.ListResponse[dto.CustomerResponse]
// @Router       /api/customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	page, ok, err := parsePage(c)
	if !ok {
		return err
	}
	customers := h.svc.SearchCustomers(c.Query("q"))
	return c.JSON(dto.Paginate(dto.NewCustomerResponses(customers), page))
}

func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	cu, ok := h.svc.GetCustomer(c.Params("id"))
	if !ok {
		return notFound(c, "cliente")
	}
	return c.JSON(dto.NewCustomerResponse(cu))
}

// Create godoc
// @Summary      Crear cliente
// @Tags         customers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCustomerRequest  true  "Datos del cliente"
// @Success      201   {object}  dto.CustomerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	cu := h.svc.AddCustomer(in.ToEntity())
	return c.Status(fiber.StatusCreated).JSON(dto.NewCustomerResponse(cu))
}

func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCustomerRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	cu, ok := h.svc.UpdateCustomer(c.Params("id"), in.ToPatch())
	if !ok {
		return notFound(c, "cliente")
	}
	return c.JSON(dto.NewCustomerResponse(cu))
}

func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	if !h.svc.DeleteCustomer(c.Params("id")) {
		return notFound(c, "cliente")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
