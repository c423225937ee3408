// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/gorilla/csrf"
	"github.com/z-bubblegum/nigelleadmagnet/internal/domain/models"
)

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
type BaseVM struct {
	SiteName    string
	Title       string
	CurrentPath string

	// CSRF token for forms (use in hidden input field)
	CSRFToken string
}

// New creates a BaseVM populated from the request. Set Title on the
// returned value.
func New(r *http.Request) BaseVM {
	return BaseVM{
		SiteName:    models.DefaultSiteName,
		CurrentPath: httpnav.CurrentPath(r),
		CSRFToken:   csrf.Token(r),
	}
}
