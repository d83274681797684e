package middleware

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/guardapp/contacts-api/internal/utils"
)

const (
	uploadField   = "image"
	maxUploadSize = 32 << 20 // bytes held in memory while parsing
)

const fileKey ctxKey = "uploaded_file"

// FileFromContext returns the stored path of the uploaded file, if any.
func FileFromContext(ctx context.Context) (string, bool) {
	path, ok := ctx.Value(fileKey).(string)
	return path, ok
}

// Upload accepts at most one multipart file under the "image" field and
// writes it to dir as <unix-ms>-<random><ext> before the handler runs. The
// stored path goes into the request context. Note the file lands on disk
// before handler validation, so a rejected request can leave it orphaned.
func Upload(dir string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			ct := r.Header.Get("Content-Type")
			if !strings.HasPrefix(ct, "multipart/form-data") {
				next.ServeHTTP(w, r)
				return
			}

			if err := r.ParseMultipartForm(maxUploadSize); err != nil {
				utils.JSONError(w, http.StatusBadRequest, "requisição multipart inválida")
				return
			}

			file, header, err := r.FormFile(uploadField)
			if err == http.ErrMissingFile {
				next.ServeHTTP(w, r)
				return
			}
			if err != nil {
				utils.JSONError(w, http.StatusBadRequest, "requisição multipart inválida")
				return
			}
			defer file.Close()

			name := fmt.Sprintf("%d-%s%s",
				time.Now().UnixMilli(),
				uuid.NewString(),
				filepath.Ext(header.Filename),
			)
			path := filepath.Join(dir, name)

			if err := saveFile(file, path); err != nil {
				utils.JSONError(w, http.StatusInternalServerError, "erro ao salvar arquivo")
				return
			}

			ctx := context.WithValue(r.Context(), fileKey, path)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func saveFile(src io.Reader, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	dst, err := os.Create(path)
	if err != nil {
		return err
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return err
	}

	return dst.Close()
}
