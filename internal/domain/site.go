package domain

// Site é uma propriedade verificada no Search Console
type Site struct {
	SiteURL         string `json:"siteUrl"`
	PermissionLevel string `json:"permissionLevel"`
}
