package assist

import "context"

// Advisor is the provider-agnostic interface every diagnostic backend
// must implement. To swap providers, implement this interface.
type Advisor interface {
	// Diagnose sends the user's complaint and returns the advisor's
	// answer. Implementations must honor ctx cancellation.
	Diagnose(ctx context.Context, prompt string) (string, error)
}

// systemInstruction frames every diagnosis request. Kept in Indonesian
// to match the workshop's audience.
const systemInstruction = `Anda adalah kepala mekanik ahli di SMK Muhammadiyah Cangkringan (TEFA).
Jawablah dengan bahasa Indonesia yang sopan, teknis namun mudah dimengerti, dan singkat.
Berikan diagnosa kemungkinan kerusakan dan solusi berdasarkan keluhan kendaraan.
Motto: Religius, Unggul, Kompeten.`

// Fallback is returned whenever the advisor cannot be reached. The
// caller must never see a raw provider failure.
const Fallback = "Maaf, sistem AI sedang tidak dapat diakses saat ini."
