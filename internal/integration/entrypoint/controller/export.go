package controller

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finex/backend/internal/application/usecase/export"
	"github.com/finex/backend/internal/integration/i18n"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportController handles spreadsheet exports.
type ExportController struct {
	errorResponder
	exportUseCase *export.ExportMovementsUseCase
}

// NewExportController creates a new export controller instance.
func NewExportController(exportUseCase *export.ExportMovementsUseCase, translator *i18n.Translator) *ExportController {
	return &ExportController{
		errorResponder: newErrorResponder(translator),
		exportUseCase:  exportUseCase,
	}
}

// Movements handles GET /movements/export requests.
func (c *ExportController) Movements(ctx *gin.Context) {
	output, err := c.exportUseCase.Execute(ctx.Request.Context(), export.ExportMovementsInput{
		Start: ctx.Query("start"),
		End:   ctx.Query("end"),
	})
	if err != nil {
		c.fail(ctx, err, i18n.KeyExportError)
		return
	}

	slog.Debug("movements exported", "file", output.Filename, "rows", output.Rows)

	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, output.Filename))
	ctx.Data(http.StatusOK, xlsxContentType, output.Content)
}
