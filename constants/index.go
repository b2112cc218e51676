package constants

const (
	ROLE_ADMIN = "admin"
	ROLE_USER  = "user"
)

// User-facing messages are Armenian, the product locale.
const (
	ERROR_INPUT          = "Սխալ մուտքային տվյալներ"
	ERROR_INTERNAL_ERROR = "Ներքին սխալ, փորձեք կրկին"
	ERROR_CREATE         = "Չհաջողվեց ստեղծել գրառումը"
	ERROR_EDIT           = "Չհաջողվեց թարմացնել գրառումը"
	ERROR_DELETE         = "Չհաջողվեց ջնջել գրառումը"
	ERROR_PARSE_LOCALS   = "Չհաջողվեց մշակել հարցումը"

	NOT_FOUND_RECORDS = "Գրառումը չի գտնվել"
	NOT_ADMIN         = "Դուք չունեք ադմինիստրատորի իրավունքներ"

	MISSING_LOGIN_INPUT   = "Հեռախոսահամարը և գաղտնաբառը պարտադիր են"
	INVALID_PHONE         = "Հեռախոսահամարը գրանցված չէ"
	INVALID_PASSWORD      = "Սխալ գաղտնաբառ"
	ACCOUNT_NOT_ACTIVE    = "Հաշիվն ապաակտիվացված է"
	PHONE_EXISTS          = "Հեռախոսահամարն արդեն գրանցված է"
	EMAIL_EXISTS          = "Էլ. փոստն արդեն գրանցված է"
	CAN_NOT_HASH_PASSWORD = "Չհաջողվեց մշակել գաղտնաբառը"
	PASSWORD_TOO_SHORT    = "Գաղտնաբառը պետք է լինի առնվազն 6 նիշ"

	INVALID_OR_EXPIRED_CODE = "Սխալ կամ ժամկետանց կոդ"
	TOO_MANY_RESET_REQUESTS = "Չափազանց շատ հարցումներ, փորձեք մեկ ժամ հետո"
	OTP_DELIVERY_FAILED     = "Չհաջողվեց ուղարկել կոդը Telegram-ով"

	SCREENING_NOT_FOUND    = "Սեանսը չի գտնվել"
	SCREENING_ENDED        = "Սեանսն արդեն ավարտվել է"
	SCREENING_OVERLAP      = "Ժամանակացույցի համընկնում այս դահլիճում"
	SCREENING_HAS_TICKETS  = "Սեանսն ունի վաճառված տոմսեր"
	SEAT_TAKEN             = "Նստատեղն արդեն զբաղված է"
	SEAT_NOT_FOUND         = "Նստատեղը չի գտնվել"
	HALL_NOT_FOUND         = "Դահլիճը չի գտնվել"
	GUEST_CONTACT_REQUIRED = "Անհրաժեշտ է անուն և հեռախոսահամար"
	INVALID_EMAIL          = "Սխալ էլ. փոստի հասցե"

	ORDER_NOT_FOUND     = "Պատվերը չի գտնվել"
	TICKET_NOT_FOUND    = "Տոմսը չի գտնվել"
	TICKET_ALREADY_USED = "Տոմսն արդեն օգտագործված է"

	DATA_INPUT_IS_NOT_NUMBER = "Պարամետրը պետք է լինի թիվ"
)
