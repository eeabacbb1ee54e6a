package handler

import (
	"Lectern/internal/api/dto"
	"Lectern/internal/pkg/consts"
	"Lectern/internal/pkg/minio"
	"Lectern/internal/pkg/response"
	"Lectern/internal/pkg/util"
	"Lectern/internal/service"
	log "log/slog"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MediaHandler struct{}

func NewMediaHandler() *MediaHandler {
	return &MediaHandler{}
}

const professorImageSize = 512

// Upload 接收教授头像，裁成正方形缩略图后入 MinIO
func (s *MediaHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	reader, err := file.Open()
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	defer func() { _ = reader.Close() }()

	contentType, err := util.GetSafeContentType(reader)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if !strings.HasPrefix(contentType, consts.MimePrefixImage) {
		response.Error(c, service.ErrFileNotSupported)
		return
	}

	thumb, err := util.SquareThumbnail(reader, professorImageSize)
	if err != nil {
		log.ErrorContext(c.Request.Context(), "thumbnail failed", "err", err)
		response.Error(c, service.ErrFileNotSupported)
		return
	}

	// 统一转存为 JPEG，原扩展名不再保留
	objectName := time.Now().Format("2006/01/02/") + uuid.NewString() + ".jpg"

	fileKey, err := minio.UploadFile(c.Request.Context(), objectName, thumb, int64(thumb.Len()), "image/jpeg")
	if err != nil {
		log.ErrorContext(c.Request.Context(), "MinIO upload failed", "err", err)
		response.Error(c, service.UnExpectedError)
		return
	}

	response.Success(c, dto.MediaUploadResultDTO{
		URL: minio.GetPublicURL(fileKey),
	})
}
