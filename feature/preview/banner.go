package preview

import (
	"fmt"
	"io"

	"ciclo-integrado/core/server"
)

const bannerTemplate = `
╔════════════════════════════════════════════════════╗
║                                                    ║
║     🚀 CICLO INTEGRADO - SERVIDOR LOCAL 🚀        ║
║                                                    ║
╚════════════════════════════════════════════════════╝

📊 CONFIGURAÇÃO:
  • Host:     %[1]s
  • Porta:    %[2]d
  • Pasta:    %[3]s

🌐 URLs:
  ✓ Home:      %[4]s
  ✓ Dashboard: %[5]s
  ✓ API Docs:  Veja backend/postman-collection.json

⌨️  COMANDOS:
  • Parar:     Pressione Ctrl+C
  • Logs:      Aparecerão nesta janela
  • Reload:    F5 no navegador

📝 PRÓXIMOS PASSOS:
  1. O navegador abrirá automaticamente
  2. Teste as páginas localmente
  3. Para backend, execute: cd backend && npm run dev
  4. Para deploy, veja: backend/DEPLOY.md

💡 DICA: Mantenha esta janela aberta enquanto desenvolve

`

// PrintBanner writes the startup banner describing cfg and the resolved root.
func PrintBanner(w io.Writer, cfg server.Config, root string) {
	fmt.Fprintf(w, bannerTemplate,
		server.Host,
		cfg.Port,
		root,
		cfg.EntryURL(),
		cfg.URL("dashboard.html"),
	)
}
