package pkg

import (
	"crypto/tls"
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string // 发件人邮箱
	Password string // 授权码/密码
	From     string // 显示的发件人，可与 Username 相同
}

// Enabled SMTP 未配置时邮件通知整体关闭
func (cfg SMTPConfig) Enabled() bool {
	return cfg.Host != "" && cfg.Port != 0
}

func SendEmail(cfg SMTPConfig, to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.TLSConfig = &tls.Config{InsecureSkipVerify: false}
	return d.DialAndSend(m)
}

// NewFollowerHTML 新粉丝邮件模板
func NewFollowerHTML(followerName string) string {
	return fmt.Sprintf(`<p>你好，</p><p><b>@%s</b> 关注了你。</p><p>登录 V~ 查看 Ta 的主页吧。</p>`, followerName)
}
