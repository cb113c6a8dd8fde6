package render

import "SceneMail/internal/models"

// text holds the localized copy for one (scene, language) pair. Greeting is
// a format string taking the recipient name where the scene is personal.
type text struct {
	Title    string
	Greeting string
	Message  string
	Button   string
	Expiry   string
	Ignore   string
	Footer   string
	CopyLink string
	Contact  string
}

var locales = map[models.Scene]map[models.Language]text{
	models.SceneWelcome: {
		models.LangZhCN: {
			Title:    "欢迎加入",
			Greeting: "您好，%s！",
			Message:  "感谢您注册我们的服务。您的账户已成功创建。",
			Button:   "开始使用",
			Ignore:   "如果您没有创建此账户，请忽略此邮件。",
			Contact:  "如有问题，请联系",
		},
		models.LangEnUS: {
			Title:    "Welcome",
			Greeting: "Hello, %s!",
			Message:  "Thank you for registering with us. Your account has been successfully created.",
			Button:   "Get Started",
			Ignore:   "If you did not create this account, please ignore this email.",
			Contact:  "If you have questions, contact",
		},
	},
	models.SceneSignup: {
		models.LangZhCN: {
			Title:    "完成您的注册",
			Greeting: "您好，%s！",
			Message:  "感谢您注册我们的服务。请点击下面的按钮验证您的邮箱地址以激活账户。",
			Button:   "验证邮箱",
			Expiry:   "此链接将在 24 小时后过期。",
			Ignore:   "如果您没有注册此账户，请忽略此邮件。",
			Footer:   "如果您遇到任何问题，请联系我们的支持团队。",
			CopyLink: "或者复制此链接到浏览器：",
		},
		models.LangEnUS: {
			Title:    "Complete Your Registration",
			Greeting: "Hello, %s!",
			Message:  "Thank you for signing up! Please click the button below to verify your email address and activate your account.",
			Button:   "Verify Email",
			Expiry:   "This link will expire in 24 hours.",
			Ignore:   "If you did not create this account, please ignore this email.",
			Footer:   "If you have any issues, please contact our support team.",
			CopyLink: "Or copy this link in your browser:",
		},
	},
	models.SceneResetPassword: {
		models.LangZhCN: {
			Title:    "重置密码",
			Greeting: "您好，",
			Message:  "我们收到了您的密码重置请求。请点击下面的按钮来重置您的密码：",
			Button:   "重置密码",
			Expiry:   "此链接将在 24 小时后过期。",
			Ignore:   "如果您没有请求重置密码，请忽略此邮件。",
			Footer:   "如果您遇到任何问题，请联系我们的支持团队。",
		},
		models.LangEnUS: {
			Title:    "Reset Password",
			Greeting: "Hello,",
			Message:  "We received a request to reset your password. Please click the button below to reset your password:",
			Button:   "Reset Password",
			Expiry:   "This link will expire in 24 hours.",
			Ignore:   "If you did not request a password reset, please ignore this email.",
			Footer:   "If you have any issues, please contact our support team.",
		},
	},
	models.SceneVerifyEmail: {
		models.LangZhCN: {
			Title:    "验证邮箱",
			Greeting: "您好，",
			Message:  "感谢您注册！请点击下面的按钮来验证您的邮箱地址：",
			Button:   "验证邮箱",
			Expiry:   "此链接将在 24 小时后过期。",
			Ignore:   "如果您没有创建此账户，请忽略此邮件。",
			Footer:   "如果您遇到任何问题，请联系我们的支持团队。",
		},
		models.LangEnUS: {
			Title:    "Verify Email",
			Greeting: "Hello,",
			Message:  "Thank you for signing up! Please click the button below to verify your email address:",
			Button:   "Verify Email",
			Expiry:   "This link will expire in 24 hours.",
			Ignore:   "If you did not create this account, please ignore this email.",
			Footer:   "If you have any issues, please contact our support team.",
		},
	},
}
