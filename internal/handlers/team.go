package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/drjp81/devsecops-assessments/internal/services"
)

type TeamHandler struct {
	teamService services.TeamService
}

func NewTeamHandler(teamService services.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

func (th *TeamHandler) Create(c *gin.Context) {
	companyID, ok := paramID(c, "id")
	if !ok {
		return
	}
	team, err := th.teamService.Create(c.Request.Context(), companyID, services.CreateTeamInput{
		Name:        c.PostForm("name"),
		Nickname:    c.PostForm("nickname"),
		Purpose:     c.PostForm("purpose"),
		Description: c.PostForm("description"),
	})
	if err != nil {
		abortHTML(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/teams/%d", team.ID))
}

func (th *TeamHandler) Detail(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	detail, err := th.teamService.GetDetail(c.Request.Context(), id)
	if err != nil {
		abortHTML(c, err)
		return
	}
	c.HTML(http.StatusOK, "team_detail.html", gin.H{
		"Team":        detail.Team,
		"Company":     detail.Company,
		"Assessments": detail.Assessments,
	})
}
