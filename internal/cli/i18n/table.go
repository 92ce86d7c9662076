package i18n

// Default — встроенная таблица en/es.
var Default = Table{
	English: {
		"nav.allMemories": "All Memories",
		"nav.favorites":   "Favorites",
		"nav.settings":    "Settings",
		"nav.signOut":     "Sign Out",
		"nav.myMemories":  "My Memories",
		"nav.categories":  "Categories",

		"home.welcome":           "Welcome",
		"home.noMemories":        "No memories found",
		"home.noMemoriesDesc":    "Start creating your first memory to get started.",
		"home.createMemory":      "Create Memory",
		"home.searchPlaceholder": "Search memories...",
		"home.found":             "Found",
		"home.memoriesFor":       "memories for",
		"home.clearSearch":       "Clear search",

		"memory.edit":          "Edit",
		"memory.delete":        "Delete",
		"memory.favorite":      "Add to favorites",
		"memory.unfavorite":    "Remove from favorites",
		"memory.deleteConfirm": "Delete Memory",
		"memory.deleteMessage": `Are you sure you want to delete "{title}"? This action cannot be undone.`,
		"memory.cancel":        "Cancel",
		"memory.confirmDelete": "Delete",
		"memory.attachedFile":  "Attached File",
		"memory.deleted":       "Memory deleted",
		"memory.deleting":      "Memory is already being deleted",
		"memory.notFound":      "Memory not found",
		"memory.favorited":     "Added to favorites",
		"memory.unfavorited":   "Removed from favorites",
		"memory.created":       "Memory created",
		"memory.updated":       "Memory updated",
		"memory.link":          "Link",

		"form.title":            "Title",
		"form.titleRequired":    "Title *",
		"form.category":         "Category",
		"form.categoryRequired": "Category *",
		"form.content":          "Content",
		"form.contentRequired":  "Content *",
		"form.url":              "URL (Optional)",
		"form.urlInvalid":       "Please enter a valid URL",
		"form.fileUpload":       "File Upload (Optional)",
		"form.uploading":        "Uploading...",
		"form.fileDescription":  "Images, PDFs, documents, or text files (max 10MB)",
		"form.createMemory":     "Create Memory",
		"form.updateMemory":     "Update Memory",
		"form.creating":         "Creating...",
		"form.updating":         "Updating...",
		"form.createCategory":   "Create a category first",

		"settings.title":               "Settings",
		"settings.description":         "Manage your preferences and account settings",
		"settings.language":            "Language",
		"settings.languageDescription": "Choose your preferred language",
		"settings.theme":               "Theme",
		"settings.themeDescription":    "Choose your preferred theme",
		"settings.light":               "Light",
		"settings.dark":                "Dark",
		"settings.english":             "English",
		"settings.spanish":             "Spanish",
		"settings.save":                "Save Changes",
		"settings.saved":               "Settings saved successfully!",

		"categories.new":        "New Category",
		"categories.create":     "Create Category",
		"categories.name":       "Category Name",
		"categories.color":      "Color",
		"categories.icon":       "Icon",
		"categories.empty":      "No categories yet",
		"categories.memories":   "memories",
		"categories.created":    "Category created",
		"categories.noMemories": "No memories in this category",

		"favorites.title":           "Favorite Memories",
		"favorites.description":     "Your most important memories",
		"favorites.noFavorites":     "No favorites found",
		"favorites.noFavoritesDesc": "No favorite memories match your search query",

		"auth.notSignedIn": "Not signed in",
		"auth.signedInAs":  "Signed in as",
		"auth.signedIn":    "Signed in successfully",
		"auth.registered":  "Registered successfully",
		"auth.signedOut":   "Signed out",

		"common.loading":  "Loading...",
		"common.back":     "Back",
		"common.save":     "Save",
		"common.cancel":   "Cancel",
		"common.edit":     "Edit",
		"common.delete":   "Delete",
		"common.search":   "Search",
		"common.download": "Download",
		"common.open":     "Open",
		"common.total":    "Total",
	},
	Spanish: {
		"nav.allMemories": "Todos los Recuerdos",
		"nav.favorites":   "Favoritos",
		"nav.settings":    "Configuración",
		"nav.signOut":     "Cerrar Sesión",
		"nav.myMemories":  "Mis Recuerdos",
		"nav.categories":  "Categorías",

		"home.welcome":           "Bienvenido",
		"home.noMemories":        "No se encontraron recuerdos",
		"home.noMemoriesDesc":    "Comienza creando tu primer recuerdo para empezar.",
		"home.createMemory":      "Crear Recuerdo",
		"home.searchPlaceholder": "Buscar recuerdos...",
		"home.found":             "Se encontraron",
		"home.memoriesFor":       "recuerdos para",
		"home.clearSearch":       "Limpiar búsqueda",

		"memory.edit":          "Editar",
		"memory.delete":        "Eliminar",
		"memory.favorite":      "Agregar a favoritos",
		"memory.unfavorite":    "Quitar de favoritos",
		"memory.deleteConfirm": "Eliminar Recuerdo",
		"memory.deleteMessage": `¿Estás seguro de que quieres eliminar "{title}"? Esta acción no se puede deshacer.`,
		"memory.cancel":        "Cancelar",
		"memory.confirmDelete": "Eliminar",
		"memory.attachedFile":  "Archivo Adjunto",
		"memory.deleted":       "Recuerdo eliminado",
		"memory.notFound":      "Recuerdo no encontrado",
		"memory.favorited":     "Agregado a favoritos",
		"memory.unfavorited":   "Quitado de favoritos",
		"memory.created":       "Recuerdo creado",
		"memory.updated":       "Recuerdo actualizado",
		"memory.link":          "Enlace",

		"form.title":            "Título",
		"form.titleRequired":    "Título *",
		"form.category":         "Categoría",
		"form.categoryRequired": "Categoría *",
		"form.content":          "Contenido",
		"form.contentRequired":  "Contenido *",
		"form.url":              "URL (Opcional)",
		"form.urlInvalid":       "Por favor, ingresa una URL válida",
		"form.fileUpload":       "Subir Archivo (Opcional)",
		"form.uploading":        "Subiendo...",
		"form.fileDescription":  "Imágenes, PDFs, documentos o archivos de texto (máx. 10MB)",
		"form.createMemory":     "Crear Recuerdo",
		"form.updateMemory":     "Actualizar Recuerdo",
		"form.creating":         "Creando...",
		"form.updating":         "Actualizando...",
		"form.createCategory":   "Crear una categoría primero",

		"settings.title":               "Configuración",
		"settings.description":         "Gestiona tus preferencias y configuración de cuenta",
		"settings.language":            "Idioma",
		"settings.languageDescription": "Elige tu idioma preferido",
		"settings.theme":               "Tema",
		"settings.themeDescription":    "Elige tu tema preferido",
		"settings.light":               "Claro",
		"settings.dark":                "Oscuro",
		"settings.english":             "Inglés",
		"settings.spanish":             "Español",
		"settings.save":                "Guardar Cambios",
		"settings.saved":               "¡Configuración guardada exitosamente!",

		"categories.new":        "Nueva Categoría",
		"categories.create":     "Crear Categoría",
		"categories.name":       "Nombre de Categoría",
		"categories.color":      "Color",
		"categories.icon":       "Icono",
		"categories.empty":      "Aún no hay categorías",
		"categories.memories":   "recuerdos",
		"categories.created":    "Categoría creada",
		"categories.noMemories": "No hay recuerdos en esta categoría",

		"favorites.title":           "Recuerdos Favoritos",
		"favorites.description":     "Tus recuerdos más importantes",
		"favorites.noFavorites":     "No se encontraron favoritos",
		"favorites.noFavoritesDesc": "No hay recuerdos favoritos que coincidan con tu búsqueda",

		"auth.notSignedIn": "No has iniciado sesión",
		"auth.signedInAs":  "Sesión iniciada como",
		"auth.signedIn":    "Sesión iniciada correctamente",
		"auth.registered":  "Registro completado",
		"auth.signedOut":   "Sesión cerrada",

		"common.loading":  "Cargando...",
		"common.back":     "Atrás",
		"common.save":     "Guardar",
		"common.cancel":   "Cancelar",
		"common.edit":     "Editar",
		"common.delete":   "Eliminar",
		"common.search":   "Buscar",
		"common.download": "Descargar",
		"common.open":     "Abrir",
		"common.total":    "Total",
	},
}
