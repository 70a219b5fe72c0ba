package pages

// Markers detect fragments that are already present in a page.
const (
	StylesheetMarker = "css/styles.css"
	ScriptMarker     = "js/main.js"
	FooterMarker     = "<!-- Footer Padrão"
)

const (
	StylesheetLink = `<link href="../css/styles.css" rel="stylesheet"/>`
	ScriptTag      = `<script src="../js/main.js"></script>`
)

// StandardFooter is the footer shared by every page.
const StandardFooter = `<!-- Footer Padrão - Ciclo Integrado -->
<footer class="w-full border-t border-border-light bg-card-light dark:bg-gray-900 dark:border-gray-700 px-6 py-8 mt-auto">
  <div class="max-w-7xl mx-auto">
    <div class="flex flex-col md:flex-row items-center justify-between gap-6">
      <!-- Logo e Descrição -->
      <div class="flex items-center gap-3">
        <img 
          alt="Logo Ciclo Integrado" 
          class="h-10 object-contain" 
          src="../assets/images/logo_ciclo_integrado.png"
        />
        <div class="flex flex-col">
          <p class="text-sm font-semibold text-text-primary dark:text-gray-100">Ciclo Integrado</p>
          <p class="text-xs text-text-secondary dark:text-gray-400">Gestão de Contratos Municipais</p>
        </div>
      </div>

      <!-- Links e Informações -->
      <div class="flex flex-col md:flex-row items-center gap-6 md:gap-8">
        <nav class="flex gap-4 md:gap-6 text-sm">
          <a 
            href="#" 
            class="text-text-secondary hover:text-primary dark:text-gray-400 dark:hover:text-blue-400 transition-colors duration-200"
          >
            Sobre
          </a>
          <a 
            href="#" 
            class="text-text-secondary hover:text-primary dark:text-gray-400 dark:hover:text-blue-400 transition-colors duration-200"
          >
            Documentação
          </a>
          <a 
            href="#" 
            class="text-text-secondary hover:text-primary dark:text-gray-400 dark:hover:text-blue-400 transition-colors duration-200"
          >
            Suporte
          </a>
          <a 
            href="#" 
            class="text-text-secondary hover:text-primary dark:text-gray-400 dark:hover:text-blue-400 transition-colors duration-200"
          >
            Privacidade
          </a>
        </nav>

        <!-- Copyright -->
        <p class="text-xs text-text-secondary dark:text-gray-400 md:border-l md:border-border-light md:dark:border-gray-700 md:pl-6">
          © 2025 Ciclo Integrado. Todos os direitos reservados.
        </p>
      </div>
    </div>
  </div>
</footer>`
