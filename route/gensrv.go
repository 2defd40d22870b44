package route

import (
	"fmt"
	"net/http"
	"path"

	"github.com/gin-gonic/gin"
	logger "github.com/sirupsen/logrus"

	"git.thinkinpower.net/cardgen/config"
	"git.thinkinpower.net/cardgen/export"
	"git.thinkinpower.net/cardgen/gen"
	"git.thinkinpower.net/cardgen/middleware"
	"git.thinkinpower.net/cardgen/mod"
)

type genService struct {
	cfg       config.Config
	generator *gen.Generator
}

func newGenService(cfg config.Config) *genService {
	return &genService{cfg: cfg, generator: gen.NewGenerator()}
}

func (s *genService) validateBin(ctx *gin.Context) {
	bin := ctx.Param("bin")
	info := mod.BinInfo{Bin: bin, Valid: gen.IsValidBin(bin)}
	if !info.Valid {
		ctx.JSON(http.StatusOK, mod.ResponseData{
			ResponseValue: mod.ResponseValue{Code: mod.ResponseCodeInvalidParams, Msg: "bin必须是3, 4或6位数字"},
			Data:          info})
		return
	}
	info.Scheme, info.Length = gen.Classify(bin)
	ctx.JSON(http.StatusOK, mod.ResponseData{
		ResponseValue: mod.ResponseValue{Code: mod.ResponseCodeSuccess, Msg: "成功"},
		Data:          info})
}

//解析并校验批量请求, 不合法时已写响应
func (s *genService) batchRequest(ctx *gin.Context) (mod.BatchRequest, bool) {
	var req mod.BatchRequest
	if err := ctx.BindJSON(&req); err != nil {
		logger.Error(err)
		ctx.JSON(http.StatusOK, mod.ResponseValue{Code: mod.ResponseCodeFailure, Msg: "无法解析request body"})
		return req, false
	}

	bin := ExtractBin(req.Bin)
	if bin == "" || !gen.IsValidBin(bin) {
		ctx.JSON(http.StatusOK, mod.ResponseValue{Code: mod.ResponseCodeInvalidParams, Msg: "非法bin, 必须是3, 4或6位数字"})
		return req, false
	}
	req.Bin = bin

	if req.Quantity <= 0 {
		ctx.JSON(http.StatusOK, mod.ResponseValue{Code: mod.ResponseCodeInvalidParams, Msg: "数量必须大于0"})
		return req, false
	}
	if req.Quantity > s.cfg.MaxCardsPerRequest {
		ctx.JSON(http.StatusOK, mod.ResponseValue{
			Code: mod.ResponseCodeQuantityExceeded,
			Msg:  fmt.Sprintf("单次最多生成%d条", s.cfg.MaxCardsPerRequest)})
		return req, false
	}
	return req, true
}

func (s *genService) generate(ctx *gin.Context) {
	req, ok := s.batchRequest(ctx)
	if !ok {
		return
	}
	scheme, _ := gen.Classify(req.Bin)
	records, err := s.generator.GenerateBatch(req.Bin, req.Quantity)
	if err != nil {
		logger.Error(err)
		ctx.JSON(http.StatusOK, mod.ResponseValue{Code: mod.ResponseCodeFailure, Msg: "生成失败"})
		return
	}
	middleware.CountCards(scheme, len(records))
	ctx.JSON(http.StatusOK, mod.ResponseData{
		ResponseValue: mod.ResponseValue{Code: mod.ResponseCodeSuccess, Msg: "成功"},
		Data:          mod.BatchResult{Bin: req.Bin, Scheme: scheme, Records: records}})
}

func (s *genService) exportBatch(ctx *gin.Context) {
	req, ok := s.batchRequest(ctx)
	if !ok {
		return
	}
	scheme, _ := gen.Classify(req.Bin)
	records, err := s.generator.GenerateBatch(req.Bin, req.Quantity)
	if err != nil {
		logger.Error(err)
		ctx.JSON(http.StatusOK, mod.ResponseValue{Code: mod.ResponseCodeFailure, Msg: "生成失败"})
		return
	}
	filepath, err := export.Write(s.cfg.TempDir, req.Bin, records)
	if err != nil {
		logger.Error(err)
		ctx.JSON(http.StatusOK, mod.ResponseValue{Code: mod.ResponseCodeFailure, Msg: "写入导出文件失败"})
		return
	}
	middleware.CountCards(scheme, len(records))
	ctx.FileAttachment(filepath, path.Base(filepath))
}
