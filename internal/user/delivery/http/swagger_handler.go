package http

// ListUsers godoc
// @Summary List users
// @Description List every user, newest first
// @Tags Users
// @Produce json
// @Param search query string false "Substring of name or email"
// @Param role query string false "admin, manager or staff"
// @Param status query string false "active or inactive"
// @Success 200 {array} domain.User
// @Failure 500 {object} object{error=string}
// @Router /api/users [get]
func (h *UserHandler) ListUsersDoc() {}

// CreateUser godoc
// @Summary Create user
// @Description Create a user; name and email are required, email must be unique
// @Tags Users
// @Accept json
// @Produce json
// @Param request body UserRequest true "User data"
// @Success 201 {object} domain.User
// @Failure 400 {object} object{error=string}
// @Router /api/users [post]
func (h *UserHandler) CreateUserDoc() {}

// UpdateUser godoc
// @Summary Update user
// @Tags Users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body UserRequest true "Fields to change"
// @Success 200 {object} domain.User
// @Failure 400 {object} object{error=string}
// @Router /api/users/{id} [put]
func (h *UserHandler) UpdateUserDoc() {}

// DeleteUser godoc
// @Summary Delete user
// @Tags Users
// @Param id path int true "User ID"
// @Success 204
// @Failure 400 {object} object{error=string}
// @Router /api/users/{id} [delete]
func (h *UserHandler) DeleteUserDoc() {}

// ResetPassword godoc
// @Summary Reset password
// @Description Store the placeholder temporary password on the user
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} ResetPasswordResponse
// @Failure 400 {object} object{error=string}
// @Router /api/users/{id}/reset-password [post]
func (h *UserHandler) ResetPasswordDoc() {}
