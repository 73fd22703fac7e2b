package dto

// PresignRequest 预签名上传请求
type PresignRequest struct {
	Kind     string `json:"kind" binding:"required,oneof=thumbnail avatar"`
	FileName string `json:"file_name" binding:"required"`
}

// PresignData 预签名上传结果：前端 PUT 到 UploadURL，落库时保存 PublicURL
type PresignData struct {
	UploadURL string `json:"upload_url"`
	PublicURL string `json:"public_url"`
	ObjectKey string `json:"object_key"`
	ExpiresIn int    `json:"expires_in"`
}
