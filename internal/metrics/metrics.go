package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// UploadsTotal counts successfully stored uploads.
	UploadsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fileshare_uploads_total",
		Help: "Number of files uploaded.",
	})
	// DownloadsTotal counts served downloads and report retrievals.
	DownloadsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fileshare_downloads_total",
		Help: "Number of file downloads and report retrievals served.",
	})
	// QRCodesTotal counts rendered QR codes.
	QRCodesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fileshare_qr_codes_total",
		Help: "Number of QR codes rendered.",
	})
)

// Register attaches the Prometheus metrics endpoint to the router.
func Register(router *gin.Engine, path string) {
	router.GET(path, gin.WrapH(promhttp.Handler()))
}
