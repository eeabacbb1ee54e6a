package handler

import (
	"Lectern/internal/api/dto"
	"Lectern/internal/pkg/response"
	"Lectern/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ProfessorHandler struct {
	professorSvc service.ProfessorService
}

func NewProfessorHandler(professorSvc service.ProfessorService) *ProfessorHandler {
	return &ProfessorHandler{
		professorSvc: professorSvc,
	}
}

func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		response.Error(c, service.ErrParamInvalid)
		return 0, false
	}
	return id, true
}

// List 支持 ?query= 按姓名或院系过滤
func (s *ProfessorHandler) List(c *gin.Context) {
	professors, err := s.professorSvc.List(c.Request.Context(), c.Query("query"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, professors)
}

// Search 即时搜索，与 List 同源，供前端输入框联想
func (s *ProfessorHandler) Search(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		response.Success(c, []*dto.ProfessorDTO{})
		return
	}
	professors, err := s.professorSvc.List(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, professors)
}

func (s *ProfessorHandler) Detail(c *gin.Context) {
	professorID, ok := parseIDParam(c, "professor_id")
	if !ok {
		return
	}
	detail, err := s.professorSvc.Detail(c.Request.Context(), professorID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, detail)
}

func (s *ProfessorHandler) Create(c *gin.Context) {
	var baseDTO dto.ProfessorBaseDTO
	if err := c.ShouldBind(&baseDTO); err != nil {
		response.Error(c, err)
		return
	}
	id, err := s.professorSvc.Create(c.Request.Context(), &baseDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"id": id})
}

func (s *ProfessorHandler) Update(c *gin.Context) {
	professorID, ok := parseIDParam(c, "professor_id")
	if !ok {
		return
	}
	var baseDTO dto.ProfessorBaseDTO
	if err := c.ShouldBind(&baseDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.professorSvc.Update(c.Request.Context(), professorID, &baseDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *ProfessorHandler) Delete(c *gin.Context) {
	professorID, ok := parseIDParam(c, "professor_id")
	if !ok {
		return
	}
	if err := s.professorSvc.Delete(c.Request.Context(), professorID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
