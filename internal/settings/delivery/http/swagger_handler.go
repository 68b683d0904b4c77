package http

// GetSettings godoc
// @Summary Get settings
// @Description Returns the settings row, or null before one has been saved
// @Tags Settings
// @Produce json
// @Success 200 {object} domain.Settings
// @Failure 500 {object} object{error=string}
// @Router /api/settings [get]
func (h *SettingsHandler) GetSettingsDoc() {}

// UpdateSettings godoc
// @Summary Update settings
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body SettingsRequest true "Fields to change"
// @Success 200 {object} domain.Settings
// @Failure 400 {object} object{error=string}
// @Router /api/settings [put]
func (h *SettingsHandler) UpdateSettingsDoc() {}

// UploadLogo godoc
// @Summary Upload company logo
// @Tags Settings
// @Accept multipart/form-data
// @Produce json
// @Param logo formData file true "Logo image"
// @Success 200 {object} command.StoredLogo
// @Failure 400 {object} object{error=string}
// @Router /api/settings/logo [post]
func (h *SettingsHandler) UploadLogoDoc() {}
