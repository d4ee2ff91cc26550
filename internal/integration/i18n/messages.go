package i18n

// Key identifies a catalogue message.
type Key string

const (
	KeyInvalidCredentials     Key = "credenciaisInvalidas"
	KeyLoginError             Key = "erroLogin"
	KeyNameAndPriceRequired   Key = "nomePrecoObrigatorios"
	KeyInvalidPrice           Key = "precoInvalido"
	KeyInvalidAmount          Key = "valorInvalido"
	KeyCreateProductError     Key = "erroCriarProduto"
	KeyUpdateProductError     Key = "erroAtualizarProduto"
	KeyDeleteProductError     Key = "erroEliminarProduto"
	KeyAddCategoryError       Key = "erroAdicionarCategoria"
	KeyDeleteCategoryError    Key = "erroEliminarCategoria"
	KeySaveMovementError      Key = "erroGuardarMovimento"
	KeyDeleteMovementError    Key = "erroEliminarMovimento"
	KeyNoMovementsInPeriod    Key = "semMovimentosPeriodo"
	KeyCreateOperatorError    Key = "erroCriarOperador"
	KeyDeleteOperatorError    Key = "erroEliminarOperador"
	KeyRestoreProductError    Key = "erroRestaurarProduto"
	KeyExportError            Key = "erroExportar"
	KeyNoProductsSelected     Key = "nenhumProdutoSelecionado"
	KeyRequiredFieldsMissing  Key = "camposObrigatorios"
	KeySessionExpired         Key = "sessaoExpirada"
	KeyUnexpectedError        Key = "erroInesperado"
	KeyInvalidDateRange       Key = "intervaloInvalido"
	KeyMovementDateRequired   Key = "dataObrigatoria"
	KeyTooManyLoginAttempts   Key = "demasiadasTentativas"
	KeyProductCodeUnavailable Key = "codigoIndisponivel"
)

// messages holds the pt and fr texts of every key.
var messages = map[Key][2]string{
	KeyInvalidCredentials:     {"Credenciais inválidas", "Identifiants invalides"},
	KeyLoginError:             {"Erro ao fazer login", "Erreur de connexion"},
	KeyNameAndPriceRequired:   {"Nome e preço são obrigatórios", "Le nom et le prix sont obligatoires"},
	KeyInvalidPrice:           {"Preço inválido", "Prix invalide"},
	KeyInvalidAmount:          {"Valor inválido", "Valeur invalide"},
	KeyCreateProductError:     {"Erro ao criar produto", "Erreur lors de la création du produit"},
	KeyUpdateProductError:     {"Erro ao atualizar produto", "Erreur lors de la mise à jour du produit"},
	KeyDeleteProductError:     {"Erro ao eliminar produto", "Erreur lors de la suppression du produit"},
	KeyAddCategoryError:       {"Erro ao adicionar categoria", "Erreur lors de l'ajout de la catégorie"},
	KeyDeleteCategoryError:    {"Erro ao eliminar categoria", "Erreur lors de la suppression de la catégorie"},
	KeySaveMovementError:      {"Erro ao guardar movimento", "Erreur lors de l'enregistrement du mouvement"},
	KeyDeleteMovementError:    {"Erro ao eliminar movimento", "Erreur lors de la suppression du mouvement"},
	KeyNoMovementsInPeriod:    {"Sem movimentos neste período", "Aucun mouvement pour cette période"},
	KeyCreateOperatorError:    {"Erro ao criar operador", "Erreur lors de la création de l'opérateur"},
	KeyDeleteOperatorError:    {"Erro ao eliminar operador", "Erreur lors de la suppression de l'opérateur"},
	KeyRestoreProductError:    {"Erro ao restaurar produto", "Erreur lors de la restauration du produit"},
	KeyExportError:            {"Erro ao exportar", "Erreur lors de l'export"},
	KeyNoProductsSelected:     {"Nenhum produto selecionado", "Aucun produit sélectionné"},
	KeyRequiredFieldsMissing:  {"Campos obrigatórios em falta", "Champs obligatoires manquants"},
	KeySessionExpired:         {"Sessão expirada", "Session expirée"},
	KeyUnexpectedError:        {"Erro inesperado", "Erreur inattendue"},
	KeyInvalidDateRange:       {"Intervalo de datas inválido", "Période invalide"},
	KeyMovementDateRequired:   {"A data é obrigatória", "La date est obligatoire"},
	KeyTooManyLoginAttempts:   {"Demasiadas tentativas", "Trop de tentatives"},
	KeyProductCodeUnavailable: {"Não foi possível gerar um código", "Impossible de générer un code"},
}
