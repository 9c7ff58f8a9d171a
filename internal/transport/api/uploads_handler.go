package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// maxUploadBytes предел размера загружаемого файла.
const maxUploadBytes = 10 << 20

type UploadsHandler struct {
	uploadDir string
}

func NewUploadsHandler(uploadDir string) *UploadsHandler {
	return &UploadsHandler{
		uploadDir: uploadDir,
	}
}

var allowedUploadExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".webp": {},
	".pdf":  {},
}

// Temp POST UploadTempRoute. Принимает multipart поле file и сохраняет его во
// временный каталог под uuid именем. Возвращает путь, который затем
// привязывается к заявке через /payments/:id/proof.
func (h *UploadsHandler) Temp(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		_ = c.AbortWithError(http.StatusBadRequest, err).SetType(gin.ErrorTypeBind)
		return
	}
	if file.Size > maxUploadBytes {
		c.AbortWithStatus(http.StatusRequestEntityTooLarge)
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if _, ok := allowedUploadExtensions[ext]; !ok {
		c.AbortWithStatus(http.StatusUnsupportedMediaType)
		return
	}

	if mkdirErr := os.MkdirAll(h.uploadDir, 0o750); mkdirErr != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, mkdirErr).SetType(gin.ErrorTypePrivate)
		return
	}

	name := uuid.NewString() + ext
	dst := filepath.Join(h.uploadDir, name)
	if saveErr := c.SaveUploadedFile(file, dst); saveErr != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, saveErr).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"path": dst})
}
