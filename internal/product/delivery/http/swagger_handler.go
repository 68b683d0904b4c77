package http

// ListProducts godoc
// @Summary List products
// @Description List every product, newest first, optionally filtered
// @Tags Products
// @Produce json
// @Param search query string false "Substring of name or sku"
// @Param category query string false "Exact category"
// @Param supplier query string false "Exact supplier"
// @Param status query string false "Exact status"
// @Success 200 {array} domain.Product
// @Failure 500 {object} object{error=string}
// @Router /api/products [get]
func (h *ProductHandler) ListProductsDoc() {}

// CreateProduct godoc
// @Summary Create product
// @Description Create a product; name and sku are required, sku must be unique
// @Tags Products
// @Accept json
// @Produce json
// @Param request body ProductRequest true "Product data"
// @Success 201 {object} domain.Product
// @Failure 400 {object} object{error=string}
// @Router /api/products [post]
func (h *ProductHandler) CreateProductDoc() {}

// UpdateProduct godoc
// @Summary Update product
// @Description Overwrite only the supplied fields of a product
// @Tags Products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body ProductRequest true "Fields to change"
// @Success 200 {object} domain.Product
// @Failure 400 {object} object{error=string}
// @Router /api/products/{id} [put]
func (h *ProductHandler) UpdateProductDoc() {}

// DeleteProduct godoc
// @Summary Delete product
// @Tags Products
// @Param id path int true "Product ID"
// @Success 204
// @Failure 400 {object} object{error=string}
// @Router /api/products/{id} [delete]
func (h *ProductHandler) DeleteProductDoc() {}
