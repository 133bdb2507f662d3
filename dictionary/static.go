package dictionary

import (
	"strings"
	"sync"
)

// Numerals are read before dictionaries run, so no term here contains a digit.
var staticTerms = map[string]string{
	// delivery and operations
	"CI/CD":      "シーアイシーディー",
	"CI":         "シーアイ",
	"CD":         "シーディー",
	"DevOps":     "デブオプス",
	"SRE":        "エスアールイー",
	"SLO":        "エスエルオー",
	"SLI":        "エスエルアイ",
	"SLA":        "エスエルエー",
	"MTTR":       "エムティーティーアール",
	"MTBF":       "エムティービーエフ",
	"MTTD":       "エムティーティーディー",
	"KPI":        "ケーピーアイ",
	"OKR":        "オーケーアール",
	"ROI":        "アールオーアイ",
	"PoC":        "ピーオーシー",
	"MVP":        "エムブイピー",
	"QA":         "キューエー",
	"DX":         "ディーエックス",
	"IT":         "アイティー",
	"ICT":        "アイシーティー",
	"CEO":        "シーイーオー",
	"CTO":        "シーティーオー",
	"CFO":        "シーエフオー",
	"COO":        "シーオーオー",
	"HR":         "エイチアール",
	"PM":         "ピーエム",
	"OSS":        "オーエスエス",
	"FAQ":        "エフエーキュー",
	"OK":         "オーケー",
	"NG":         "エヌジー",
	"vs":         "バーサス",
	"etc":        "エトセトラ",
	"Chapter":    "チャプター",
	"Part":       "パート",
	"Section":    "セクション",
	"Appendix":   "アペンディックス",
	"Column":     "コラム",
	"Note":       "ノート",
	"Tips":       "ティップス",
	"Web":        "ウェブ",
	"web":        "ウェブ",
	"Wi-Fi":      "ワイファイ",
	"e-mail":     "イーメール",
	"email":      "イーメール",
	"Email":      "イーメール",
	"blog":       "ブログ",
	"on-call":    "オンコール",
	"toil":       "トイル",
	"Toil":       "トイル",
	"runbook":    "ランブック",
	"postmortem": "ポストモーテム",

	// computing
	"API":     "エーピーアイ",
	"AI":      "エーアイ",
	"ML":      "エムエル",
	"LLM":     "エルエルエム",
	"IoT":     "アイオーティー",
	"CPU":     "シーピーユー",
	"GPU":     "ジーピーユー",
	"RAM":     "ラム",
	"ROM":     "ロム",
	"SSD":     "エスエスディー",
	"HDD":     "エイチディーディー",
	"USB":     "ユーエスビー",
	"PC":      "ピーシー",
	"OS":      "オーエス",
	"VM":      "ブイエム",
	"UI":      "ユーアイ",
	"UX":      "ユーエックス",
	"GUI":     "ジーユーアイ",
	"CLI":     "シーエルアイ",
	"IDE":     "アイディーイー",
	"SDK":     "エスディーケー",
	"URL":     "ユーアールエル",
	"PDF":     "ピーディーエフ",
	"CSV":     "シーエスブイ",
	"JSON":    "ジェイソン",
	"YAML":    "ヤムル",
	"XML":     "エックスエムエル",
	"HTML":    "エイチティーエムエル",
	"CSS":     "シーエスエス",
	"SQL":     "エスキューエル",
	"NoSQL":   "ノーエスキューエル",
	"DB":      "ディービー",
	"RDB":     "アールディービー",
	"RDBMS":   "アールディービーエムエス",
	"SaaS":    "サース",
	"PaaS":    "パース",
	"IaaS":    "イアース",
	"REST":    "レスト",
	"RPC":     "アールピーシー",
	"gRPC":    "ジーアールピーシー",
	"GraphQL": "グラフキューエル",
	"OAuth":   "オーオース",
	"JWT":     "ジェイダブリューティー",
	"SSO":     "エスエスオー",
	"CDN":     "シーディーエヌ",
	"CRUD":    "クラッド",
	"TDD":     "ティーディーディー",
	"DDD":     "ディーディーディー",
	"MVC":     "エムブイシー",
	"OOP":     "オーオーピー",
	"AST":     "エーエスティー",
	"UTF":     "ユーティーエフ",
	"ASCII":   "アスキー",

	// networking
	"TCP/IP": "ティーシーピーアイピー",
	"TCP":    "ティーシーピー",
	"UDP":    "ユーディーピー",
	"IP":     "アイピー",
	"HTTP":   "エイチティーティーピー",
	"HTTPS":  "エイチティーティーピーエス",
	"DNS":    "ディーエヌエス",
	"VPN":    "ブイピーエヌ",
	"VPC":    "ブイピーシー",
	"LAN":    "ラン",
	"WAN":    "ワン",
	"SSH":    "エスエスエイチ",
	"SSL":    "エスエスエル",
	"TLS":    "ティーエルエス",
	"NAT":    "ナット",

	// languages and runtimes
	"Go":         "ゴー",
	"Python":     "パイソン",
	"Java":       "ジャバ",
	"JavaScript": "ジャバスクリプト",
	"TypeScript": "タイプスクリプト",
	"Rust":       "ラスト",
	"Ruby":       "ルビー",
	"PHP":        "ピーエイチピー",
	"C++":        "シープラスプラス",
	"C#":         "シーシャープ",
	"Node.js":    "ノードジェイエス",
	"React":      "リアクト",
	"Vue":        "ビュー",
	"Rails":      "レイルズ",
	"Kotlin":     "コトリン",
	"Swift":      "スウィフト",
	"Scala":      "スカラ",
	"Perl":       "パール",
	"Shell":      "シェル",
	"Bash":       "バッシュ",

	// tools and platforms
	"Kubernetes":    "クバネティス",
	"Docker":        "ドッカー",
	"Git":           "ギット",
	"GitHub":        "ギットハブ",
	"GitLab":        "ギットラボ",
	"Linux":         "リナックス",
	"Unix":          "ユニックス",
	"UNIX":          "ユニックス",
	"Windows":       "ウィンドウズ",
	"macOS":         "マックオーエス",
	"iOS":           "アイオーエス",
	"Android":       "アンドロイド",
	"AWS":           "エーダブリューエス",
	"GCP":           "ジーシーピー",
	"Azure":         "アジュール",
	"Lambda":        "ラムダ",
	"Terraform":     "テラフォーム",
	"Ansible":       "アンシブル",
	"Jenkins":       "ジェンキンス",
	"Prometheus":    "プロメテウス",
	"Grafana":       "グラファナ",
	"Datadog":       "データドッグ",
	"PagerDuty":     "ページャーデューティー",
	"Nginx":         "エンジンエックス",
	"Apache":        "アパッチ",
	"MySQL":         "マイエスキューエル",
	"PostgreSQL":    "ポストグレスキューエル",
	"Redis":         "レディス",
	"Kafka":         "カフカ",
	"Elasticsearch": "エラスティックサーチ",
	"Istio":         "イスティオ",
	"Envoy":         "エンボイ",
	"Helm":          "ヘルム",
	"Slack":         "スラック",
	"Zoom":          "ズーム",
	"Excel":         "エクセル",
	"Jira":          "ジラ",

	// organizations
	"Google":    "グーグル",
	"Microsoft": "マイクロソフト",
	"Amazon":    "アマゾン",
	"Apple":     "アップル",
	"Meta":      "メタ",
	"Facebook":  "フェイスブック",
	"Netflix":   "ネットフリックス",
	"Twitter":   "ツイッター",
	"YouTube":   "ユーチューブ",
	"IBM":       "アイビーエム",
	"Oracle":    "オラクル",
	"Intel":     "インテル",
	"NASA":      "ナサ",
	"O'Reilly":  "オライリー",
}

// symbolRules rewrite or delete symbols after term substitution. At any
// position the earlier rule wins, so arrows and two-character operators come
// before their one-character prefixes.
var symbolRules = []string{
	"->", "",
	"=>", "",
	"&", "アンド",
	"@", "アット",
	">=", "だいなりイコール",
	"<=", "しょうなりイコール",
	"!=", "ノットイコール",
	"==", "イコール",
	"≧", "だいなりイコール",
	"≦", "しょうなりイコール",
	"≠", "ノットイコール",
	"=", "イコール",
	">", "だいなり",
	"<", "しょうなり",
	"〜", "から",
	"～", "から",
	"→", "",
	"←", "",
	"⇒", "",
	"⇔", "",
	"•", "",
	"●", "",
	"○", "",
	"■", "",
	"□", "",
	"◆", "",
	"◇", "",
	"▶", "",
	"►", "",
	"※", "",
	"\"", "",
	"“", "",
	"”", "",
	"‘", "",
	"’", "",
	"[", "",
	"]", "",
	"{", "",
	"}", "",
	"【", "",
	"】", "",
	"*", "",
	"|", "",
}

var (
	static     *Dictionary
	staticOnce sync.Once
)

// Static returns the built-in dictionary, including its symbol rules.
func Static() *Dictionary {
	staticOnce.Do(func() {
		static = New(staticTerms)
		static.symbols = strings.NewReplacer(symbolRules...)
	})
	return static
}
