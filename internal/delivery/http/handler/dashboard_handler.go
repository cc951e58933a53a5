package handler

import (
	"embed"
	"html/template"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/emergency-response-dashboard/internal/domain"
	"github.com/emergency-response-dashboard/internal/usecase"
	"github.com/emergency-response-dashboard/internal/usecase/dto"
)

//go:embed templates/*.html
var templateFS embed.FS

// DashboardData - данные для шаблона дашборда
type DashboardData struct {
	Title      string
	MapWidth   float64
	MapHeight  float64
	Markers    []dto.MarkerResponse
	Legend     []dto.LegendEntry
	Summary    *dto.SummaryResponse
	Submission dto.SubmissionResponse
}

// DashboardHandler - серверный рендер страницы дашборда
type DashboardHandler struct {
	templates  *template.Template
	mapUC      *usecase.MapUseCase
	summaryUC  *usecase.SummaryUseCase
	controller *usecase.SubmissionController
	logger     *zap.Logger
}

// NewDashboardHandler - создание хендлера дашборда
func NewDashboardHandler(
	mapUC *usecase.MapUseCase,
	summaryUC *usecase.SummaryUseCase,
	controller *usecase.SubmissionController,
	logger *zap.Logger,
) (*DashboardHandler, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"pct": formatPct,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	return &DashboardHandler{
		templates:  tmpl,
		mapUC:      mapUC,
		summaryUC:  summaryUC,
		controller: controller,
		logger:     logger,
	}, nil
}

// Render - рендеринг страницы дашборда
func (h *DashboardHandler) Render(c *fiber.Ctx) error {
	data := DashboardData{
		Title:      "Emergency Response Dashboard",
		MapWidth:   domain.MapWidth,
		MapHeight:  domain.MapHeight,
		Markers:    h.mapUC.Markers(),
		Legend:     h.mapUC.Legend(),
		Summary:    h.summaryUC.GetSummary(),
		Submission: h.controller.Snapshot(),
	}

	c.Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.ExecuteTemplate(c.Response().BodyWriter(), "dashboard.html", data); err != nil {
		h.logger.Error("Failed to render dashboard", zap.Error(err))
		return err
	}
	return nil
}
