package internal

import "strings"

// Reply synthesis is a flat ordered rule list, not a classifier: each rule
// carries a keyword set, matching is case-insensitive substring containment,
// and the first matching rule wins.

type replyRule struct {
	keywords []string
	reply    string
}

const welcomeText = "Halo! Selamat datang di Asisten Cerdas RANTU. 🌾\n\n" +
	"Saya siap membantu Anda dengan informasi lengkap seputar:\n" +
	"✅ Update harga pasar komoditas di Jambi\n" +
	"✅ Prakiraan cuaca & rekomendasi penyiraman\n" +
	"✅ Panduan budidaya & pengendalian hama\n\n" +
	"Silakan pilih topik di bawah atau ketik pertanyaan Anda."

var assistantRules = []replyRule{
	{
		keywords: []string{"halo", "hai"},
		reply: "Halo juga! 👋 Semoga hari Anda menyenangkan.\n\n" +
			"Saya adalah asisten virtual RANTU yang didesain khusus untuk membantu petani dan pembeli.\n\n" +
			"Anda bisa menanyakan hal-hal spesifik seperti:\n" +
			"• \"Berapa harga bawang merah di pasar Angso Duo?\"\n" +
			"• \"Bagaimana cara mengatasi daun cabai keriting?\"\n" +
			"• \"Apakah nanti sore akan hujan?\"\n\n" +
			"Apa yang bisa saya bantu sekarang?",
	},
	{
		keywords: []string{"harga", "berapa"},
		reply: "Berikut rangkuman harga rata-rata komoditas pangan di pasar Jambi hari ini:\n\n" +
			"🥦 Sayuran Segar\n" +
			"• Bayam/Kangkung: Rp 2.500 - 3.000 /ikat\n" +
			"• Tomat Sayur: Rp 8.000 /kg\n" +
			"• Wortel Berastagi: Rp 12.000 /kg\n\n" +
			"🌶️ Bumbu & Rempah\n" +
			"• Cabai Merah: Rp 45.000 /kg\n" +
			"• Bawang Merah: Rp 32.000 /kg\n\n" +
			"Data diperbarui pukul 08:00 WIB. Ada komoditas lain yang ingin dicek?",
	},
	{
		keywords: []string{"cuaca"},
		reply: "🌤️ Laporan Cuaca Wilayah Jambi & Sekitarnya\n\n" +
			"📅 Kondisi Saat Ini: Cerah Berawan, Suhu 31°C\n" +
			"💧 Kelembapan: 70%\n\n" +
			"📢 Prakiraan Lanjutan:\n" +
			"• Siang: Terik dengan indeks UV tinggi.\n" +
			"• Sore: Waspada potensi hujan lokal di wilayah Muaro Jambi.",
	},
}

const assistantFallback = "Maaf, saya belum memahami pertanyaan spesifik Anda sepenuhnya. 🤔\n\n" +
	"Coba tanya tentang:\n" +
	"• 'Harga cabai'\n" +
	"• 'Cuaca hari ini'\n" +
	"• 'Cara tanam padi'"

var contactRules = []replyRule{
	{
		keywords: []string{"stok", "ready", "ada"},
		reply:    "Halo kak! Stok saat ini masih ready banyak ya. Silakan langsung diorder sebelum kehabisan. 🌱",
	},
	{
		keywords: []string{"kirim", "kapan", "antar", "sampai"},
		reply: "Pengiriman dilakukan setiap hari. Pesanan sebelum jam 14.00 WIB akan dikirim di hari yang sama. " +
			"Untuk dalam kota Jambi bisa pakai Instan ya kak. 🚚",
	},
	{
		keywords: []string{"harga", "diskon", "kurang", "murah", "mahal", "grosir"},
		reply: "Harga yang tertera sudah harga terbaik untuk kualitas Grade A langsung dari petani kak. " +
			"Untuk pembelian grosir >10kg ada harga khusus, silakan ajukan penawaran. 💰",
	},
	{
		keywords: []string{"segar", "fresh", "layu", "bagus", "kondisi"},
		reply: "Tenang kak, semua sayur & buah kami dipanen subuh tadi. Dijamin sampai di tangan kakak masih segar " +
			"dan tidak layu. Garansi uang kembali jika rusak. 🌿",
	},
	{
		keywords: []string{"tahan", "awet", "lama"},
		reply:    "Produk ini bisa tahan 2-3 hari di suhu ruang yang sejuk. Kalau masuk kulkas bisa tahan sampai 1 minggu lebih kak. ❄️",
	},
}

var contactFallbacks = []string{
	"Halo kak, terima kasih sudah mampir. Ada yang bisa kami bantu jelaskan lagi tentang produknya? 😊",
	"Iya kak, benar sekali. Silakan ditanyakan jika masih ada yang kurang jelas ya. 🙏",
	"Baik kak, ditunggu orderannya ya! Semoga cocok dengan produk hasil panen kami.",
}

// QuickQuestions are the suggested prompts shown under an assistant session.
var QuickQuestions = []string{
	"Update harga cabai & bawang",
	"Cuaca Jambi hari ini",
	"Cara tanam cabai merah",
	"Obat hama ulat grayak",
	"Rekomendasi pupuk dasar",
}

// ContactQuickQuestions are the suggested prompts shown under a seller session.
var ContactQuickQuestions = []string{
	"Apakah stok masih ready? 📦",
	"Bisa dikirim hari ini? 🚚",
	"Kondisi barang segar? 🌿",
	"Berapa lama tahan di suhu ruang? ⏳",
	"Ada harga grosir untuk pembelian banyak? 💰",
}

func matchRules(rules []replyRule, text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.reply, true
			}
		}
	}
	return "", false
}

// AssistantReply synthesizes the assistant's answer to the given input.
// It is fully deterministic.
func AssistantReply(text string) string {
	if reply, ok := matchRules(assistantRules, text); ok {
		return reply
	}
	return assistantFallback
}

// ContactReply synthesizes a human contact's answer to the given input.
// Only the fallback branch is random: pick receives the candidate count and
// must return an index in [0, n).
func ContactReply(text string, pick func(n int) int) string {
	if reply, ok := matchRules(contactRules, text); ok {
		return reply
	}
	return contactFallbacks[pick(len(contactFallbacks))]
}

// SynthesizeReply dispatches to the responder matching the session kind.
func SynthesizeReply(kind SessionKind, text string, pick func(n int) int) string {
	if kind == KindAssistant {
		return AssistantReply(text)
	}
	return ContactReply(text, pick)
}

// Suggestions returns the quick prompts appropriate for a session.
func Suggestions(s *ChatSession) []string {
	if s == nil {
		return nil
	}
	switch s.Kind {
	case KindAssistant:
		return QuickQuestions
	case KindSeller:
		return ContactQuickQuestions
	}
	return nil
}
