package httputil

import "github.com/gin-gonic/gin"

// WriteError はProblemDetailをGinレスポンスとして書き込む。
func WriteError(c *gin.Context, problem *ProblemDetail) {
	p := withInstance(c, problem)
	c.Header("Content-Type", ContentType)
	c.JSON(p.Status, p)
}

// AbortWithError はProblemDetailをGinレスポンスとして書き込み、リクエスト処理を中断する。
func AbortWithError(c *gin.Context, problem *ProblemDetail) {
	p := withInstance(c, problem)
	c.Header("Content-Type", ContentType)
	c.AbortWithStatusJSON(p.Status, p)
}

// withInstance はInstance未設定の場合にリクエストパスを補完したコピーを返す。
// 定義済みのProblemDetailを共有しても書き換わらない。
func withInstance(c *gin.Context, problem *ProblemDetail) *ProblemDetail {
	p := *problem
	if p.Instance == "" && c.Request != nil && c.Request.URL != nil {
		p.Instance = c.Request.URL.Path
	}
	return &p
}
