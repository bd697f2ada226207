package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/drjp81/devsecops-assessments/internal/services"
)

type CompanyHandler struct {
	companyService services.CompanyService
}

func NewCompanyHandler(companyService services.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

func (ch *CompanyHandler) List(c *gin.Context) {
	companies, err := ch.companyService.List(c.Request.Context())
	if err != nil {
		abortHTML(c, err)
		return
	}
	c.HTML(http.StatusOK, "companies_list.html", gin.H{
		"Companies": companies,
	})
}

func (ch *CompanyHandler) Create(c *gin.Context) {
	_, err := ch.companyService.Create(c.Request.Context(), services.CreateCompanyInput{
		Name:          c.PostForm("name"),
		Address:       c.PostForm("address"),
		ContactPerson: c.PostForm("contact_person"),
	})
	if err != nil {
		abortHTML(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/companies")
}

func (ch *CompanyHandler) Detail(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	detail, err := ch.companyService.GetDetail(c.Request.Context(), id)
	if err != nil {
		abortHTML(c, err)
		return
	}
	c.HTML(http.StatusOK, "company_detail.html", gin.H{
		"Company": detail.Company,
		"Teams":   detail.Teams,
	})
}
